package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xhdwallet/internal/crypto"
	"xhdwallet/internal/domain"
)

func sharedSecretCmd() *cobra.Command {
	var (
		account, index uint32
		context        string
		asServer       bool
	)

	cmd := &cobra.Command{
		Use:   "shared-secret [counterparty-pub-base64]",
		Short: "Derive the ECDH shared secret with a counterparty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := parseContext(context)
			if err != nil {
				return err
			}
			counterparty, err := parsePublicKey(args[0])
			if err != nil {
				return err
			}
			wire, err := buildWire()
			if err != nil {
				return err
			}

			secret, err := wire.Exchange.SharedSecret(ctx, account, index, counterparty, !asServer)
			if err != nil {
				return err
			}
			fmt.Println(crypto.B64(secret.Slice()))
			return nil
		},
	}

	cmd.Flags().StringVar(&context, "context", "identity", "key context (address or identity)")
	cmd.Flags().Uint32Var(&account, "account", 0, "account number")
	cmd.Flags().Uint32Var(&index, "index", 0, "key index")
	cmd.Flags().BoolVar(&asServer, "server", false, "take the server role (default client)")
	return cmd
}

func sessionKeysCmd() *cobra.Command {
	var (
		account, index uint32
		context        string
		asServer       bool
	)

	cmd := &cobra.Command{
		Use:   "session-keys [counterparty-pub-base64]",
		Short: "Derive directional session keys with a counterparty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := parseContext(context)
			if err != nil {
				return err
			}
			counterparty, err := parsePublicKey(args[0])
			if err != nil {
				return err
			}
			wire, err := buildWire()
			if err != nil {
				return err
			}

			keys, err := wire.Exchange.SessionKeys(ctx, account, index, counterparty, !asServer)
			if err != nil {
				return err
			}
			fmt.Printf("rx: %s\ntx: %s\n", crypto.B64(keys.Rx[:]), crypto.B64(keys.Tx[:]))
			return nil
		},
	}

	cmd.Flags().StringVar(&context, "context", "identity", "key context (address or identity)")
	cmd.Flags().Uint32Var(&account, "account", 0, "account number")
	cmd.Flags().Uint32Var(&index, "index", 0, "key index")
	cmd.Flags().BoolVar(&asServer, "server", false, "take the server role (default client)")
	return cmd
}

func parsePublicKey(s string) (domain.PublicKey, error) {
	var pub domain.PublicKey
	b, err := crypto.B64Decode(s)
	if err != nil {
		return pub, err
	}
	if len(b) != len(pub) {
		return pub, fmt.Errorf("public key must be %d bytes, got %d", len(pub), len(b))
	}
	copy(pub[:], b)
	return pub, nil
}

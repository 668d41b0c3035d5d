package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xhdwallet/internal/crypto"
)

func keygenCmd() *cobra.Command {
	var account, index uint32

	cmd := &cobra.Command{
		Use:   "keygen [context]",
		Short: "Derive and print a context-scoped public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := parseContext(args[0])
			if err != nil {
				return err
			}
			scheme, err := parseScheme()
			if err != nil {
				return err
			}
			wire, err := buildWire()
			if err != nil {
				return err
			}

			pub, err := wire.Keys.KeyGen(ctx, account, index, scheme)
			if err != nil {
				return err
			}
			fmt.Println(crypto.B64(pub.Slice()))
			return nil
		},
	}

	cmd.Flags().Uint32Var(&account, "account", 0, "account number")
	cmd.Flags().Uint32Var(&index, "index", 0, "key index")
	return cmd
}

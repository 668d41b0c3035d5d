package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xhdwallet/internal/crypto"
	"xhdwallet/internal/domain"
)

func signDataCmd() *cobra.Command {
	var (
		account, index uint32
		context        string
		encoding       string
		schemaFile     string
	)

	cmd := &cobra.Command{
		Use:   "sign-data [payload]",
		Short: "Sign an arbitrary payload after tag and schema checks",
		Long: `Sign an arbitrary payload with a context-scoped key.

The payload is decoded per --encoding, rejected if it begins with a
reserved protocol tag, checked against the JSON-Schema in --schema (when
given), and only then signed. The signature covers the decoded bytes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := parseContext(context)
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

			meta := domain.SignMetadata{Encoding: domain.Encoding(encoding)}
			if schemaFile != "" {
				meta.Schema, err = os.ReadFile(schemaFile)
				if err != nil {
					return err
				}
			}

			sig, err := wire.Signing.SignData(ctx, account, index, []byte(args[0]), meta, scheme)
			if err != nil {
				return err
			}
			fmt.Println(crypto.B64(sig.Slice()))
			return nil
		},
	}

	cmd.Flags().StringVar(&context, "context", "address", "key context (address or identity)")
	cmd.Flags().Uint32Var(&account, "account", 0, "account number")
	cmd.Flags().Uint32Var(&index, "index", 0, "key index")
	cmd.Flags().StringVar(&encoding, "encoding", "none", "payload encoding (none, base64 or msgpack)")
	cmd.Flags().StringVar(&schemaFile, "schema", "", "JSON-Schema file to validate the payload against")
	return cmd
}

func signTxCmd() *cobra.Command {
	var (
		account, index uint32
		context        string
	)

	cmd := &cobra.Command{
		Use:   "sign-tx [tx-base64]",
		Short: "Sign a prefix-encoded transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := parseContext(context)
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

			tx, err := crypto.B64Decode(args[0])
			if err != nil {
				return err
			}
			sig, err := wire.Signing.SignTransaction(ctx, account, index, tx, scheme)
			if err != nil {
				return err
			}
			fmt.Println(crypto.B64(sig.Slice()))
			return nil
		},
	}

	cmd.Flags().StringVar(&context, "context", "address", "key context (address or identity)")
	cmd.Flags().Uint32Var(&account, "account", 0, "account number")
	cmd.Flags().Uint32Var(&index, "index", 0, "key index")
	return cmd
}

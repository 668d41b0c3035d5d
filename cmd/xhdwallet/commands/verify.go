package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xhdwallet/internal/crypto"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [msg-base64] [sig-base64] [pub-base64]",
		Short: "Verify an Ed25519 signature",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := crypto.B64Decode(args[0])
			if err != nil {
				return err
			}
			sig, err := crypto.B64Decode(args[1])
			if err != nil {
				return err
			}
			pub, err := crypto.B64Decode(args[2])
			if err != nil {
				return err
			}

			if !crypto.Verify(sig, msg, pub) {
				return fmt.Errorf("signature invalid")
			}
			fmt.Println("signature valid")
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"

	"xhdwallet/internal/store"
	"xhdwallet/internal/util/memzero"
)

func initCmd() *cobra.Command {
	var mnemonic string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate or import a wallet seed and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			generated := mnemonic == ""
			if generated {
				entropy, err := bip39.NewEntropy(256)
				if err != nil {
					return err
				}
				mnemonic, err = bip39.NewMnemonic(entropy)
				if err != nil {
					return err
				}
			}
			if !bip39.IsMnemonicValid(mnemonic) {
				return fmt.Errorf("invalid mnemonic")
			}

			seed := bip39.NewSeed(mnemonic, "")
			defer memzero.Zero(seed)

			seeds := store.NewSeedFileStore(home)
			if err := seeds.SaveSeed(passphrase, seed); err != nil {
				return err
			}

			if generated {
				fmt.Printf("Wallet created.\nMnemonic (write this down):\n%s\n", mnemonic)
			} else {
				fmt.Println("Wallet imported.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "import an existing BIP39 mnemonic instead of generating one")
	return cmd
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"xhdwallet/internal/app"
	"xhdwallet/internal/domain"
)

var (
	home       string
	passphrase string
	schemeName string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "xhdwallet",
		Short: "Hierarchical-deterministic Ed25519 wallet CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".xhdwallet")
			}
			return os.MkdirAll(home, 0o700)
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.xhdwallet)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the seed")
	root.PersistentFlags().StringVar(&schemeName, "scheme", "peikert", "derivation scheme (peikert or khovratovich)")

	root.AddCommand(initCmd(), keygenCmd(), signDataCmd(), signTxCmd(), verifyCmd(), sharedSecretCmd(), sessionKeysCmd())
	return root.Execute()
}

// buildWire loads the seed and assembles the services. Commands that touch
// keys call it; init does not, since no seed exists yet.
func buildWire() (*app.Wire, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase required (-p)")
	}
	return app.NewWire(app.Config{Home: home}, passphrase)
}

func parseScheme() (domain.DerivationScheme, error) {
	switch schemeName {
	case "peikert":
		return domain.SchemePeikert, nil
	case "khovratovich":
		return domain.SchemeKhovratovich, nil
	default:
		return 0, fmt.Errorf("unknown scheme %q (want peikert or khovratovich)", schemeName)
	}
}

func parseContext(s string) (domain.KeyContext, error) {
	switch s {
	case "address":
		return domain.KeyContextAddress, nil
	case "identity":
		return domain.KeyContextIdentity, nil
	default:
		return 0, fmt.Errorf("unknown context %q (want address or identity)", s)
	}
}

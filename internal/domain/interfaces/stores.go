package interfaces

// SeedStore persists the wallet seed encrypted under a passphrase. The
// derivation core itself never touches storage; this is the CLI boundary.
type SeedStore interface {
	SaveSeed(passphrase string, seed []byte) error
	LoadSeed(passphrase string) ([]byte, error)
}

package store

import (
	"os"
	"path/filepath"
	"sync"

	"xhdwallet/internal/domain"
)

const seedFilename = "seed.json.enc"

// SeedFileStore persists the wallet seed to disk, encrypted under a
// passphrase-derived key.
type SeedFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSeedFileStore returns a SeedFileStore rooted at dir.
func NewSeedFileStore(dir string) *SeedFileStore {
	return &SeedFileStore{dir: dir}
}

// SaveSeed encrypts the seed and writes it atomically.
func (s *SeedFileStore) SaveSeed(passphrase string, seed []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	N, r, p := scryptParamsDefault()
	ct, err := encrypt(passphrase, seed, N, r, p)
	if err != nil {
		return err
	}
	return writeSeedBlob(filepath.Join(s.dir, seedFilename), ct)
}

// LoadSeed reads and decrypts the seed.
func (s *SeedFileStore) LoadSeed(passphrase string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, seedFilename))
	if err != nil {
		return nil, err
	}
	return decrypt(passphrase, b)
}

// writeSeedBlob lands the blob without a window where the seed file is
// missing or half-written: stage in a temp file next to the target, tighten
// its mode before the ciphertext touches it, then rename into place.
func writeSeedBlob(path string, blob []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".seed-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(blob); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Compile-time assertion that SeedFileStore implements domain.SeedStore.
var _ domain.SeedStore = (*SeedFileStore)(nil)

package store_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"xhdwallet/internal/store"
)

func TestSeedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := store.NewSeedFileStore(dir)

	seed := bytes.Repeat([]byte{0xAB}, 64)
	if err := s.SaveSeed("correct horse", seed); err != nil {
		t.Fatalf("SaveSeed: %v", err)
	}

	got, err := s.LoadSeed("correct horse")
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	if !bytes.Equal(got, seed) {
		t.Fatalf("loaded seed differs from saved seed")
	}
}

func TestSeedWrongPassphrase(t *testing.T) {
	dir := t.TempDir()
	s := store.NewSeedFileStore(dir)

	if err := s.SaveSeed("right", []byte("some seed material")); err != nil {
		t.Fatalf("SaveSeed: %v", err)
	}
	if _, err := s.LoadSeed("wrong"); err != store.ErrWrongPassphrase {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
}

func TestSeedTamperDetected(t *testing.T) {
	dir := t.TempDir()
	s := store.NewSeedFileStore(dir)

	if err := s.SaveSeed("pw", []byte("some seed material")); err != nil {
		t.Fatalf("SaveSeed: %v", err)
	}

	path := filepath.Join(dir, "seed.json.enc")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal blob: %v", err)
	}
	var cipher []byte
	if err := json.Unmarshal(m["cipher"], &cipher); err != nil {
		t.Fatalf("unmarshal cipher: %v", err)
	}
	cipher[0] ^= 0x01
	m["cipher"], _ = json.Marshal(cipher)
	raw, _ = json.Marshal(m)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("rewrite blob: %v", err)
	}

	if _, err := s.LoadSeed("pw"); err != store.ErrWrongPassphrase {
		t.Fatalf("expected ErrWrongPassphrase on tampered cipher, got %v", err)
	}
}

func TestSeedOverwrite(t *testing.T) {
	dir := t.TempDir()
	s := store.NewSeedFileStore(dir)

	if err := s.SaveSeed("pw", []byte("first")); err != nil {
		t.Fatalf("SaveSeed: %v", err)
	}
	if err := s.SaveSeed("pw", []byte("second")); err != nil {
		t.Fatalf("SaveSeed again: %v", err)
	}
	got, err := s.LoadSeed("pw")
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected latest seed, got %q", got)
	}
}

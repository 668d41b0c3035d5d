package app

import (
	"xhdwallet/internal/domain"
	"xhdwallet/internal/schema"
	exchangesvc "xhdwallet/internal/services/exchange"
	keyringsvc "xhdwallet/internal/services/keyring"
	signingsvc "xhdwallet/internal/services/signing"
	"xhdwallet/internal/store"
	"xhdwallet/internal/util/memzero"
)

// Wire bundles the stores and services for the CLI.
type Wire struct {
	Seeds    domain.SeedStore
	Keys     domain.KeyService
	Signing  domain.SigningService
	Exchange domain.ExchangeService
}

// NewWire constructs the dependency graph from cfg. It loads the seed from
// the store, derives the root extended key, and wipes the seed before
// returning.
func NewWire(cfg Config, passphrase string) (*Wire, error) {
	seeds := store.NewSeedFileStore(cfg.Home)

	seed, err := seeds.LoadSeed(passphrase)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(seed)

	keys := keyringsvc.FromSeed(seed)
	signing := signingsvc.New(keys, schema.New())
	exchange := exchangesvc.New(keys)

	return &Wire{
		Seeds:    seeds,
		Keys:     keys,
		Signing:  signing,
		Exchange: exchange,
	}, nil
}

package main

import (
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/segmet/storage/sqlite/zombiezen"
)

type Pool struct {
	p     *sqlitex.Pool
	store *zombiezen.RunStore
}

// RunStore opens the run database at path once.
func (p *Pool) RunStore(path string) (*zombiezen.RunStore, error) {
	if p.store != nil {
		return p.store, nil
	}

	store, pool, err := zombiezen.OpenRunStore(path)
	if err != nil {
		return nil, err
	}

	p.p = pool
	p.store = store
	return p.store, nil
}

func (p *Pool) Close() error {
	if p.p != nil {
		return p.p.Close()
	}
	return nil
}

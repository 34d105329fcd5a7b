package roster

import (
	"context"

	"github.com/mcoot/players/internal/model"
	"github.com/mcoot/players/internal/storage"
)

// SeedIfEmpty adds every player in dataset and commits once, but only when
// the store holds no players. It reports whether anything was added.
func SeedIfEmpty(ctx context.Context, store storage.Storage, dataset []model.Player) (bool, error) {
	seeded := false
	err := store.Atomically(ctx, func(tx storage.Tx) error {
		count, err := tx.CountPlayers()
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for i := range dataset {
			tx.AddPlayer(&dataset[i])
		}
		seeded = len(dataset) > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

package fetch

import (
	"context"

	"github.com/pokeview/pokedex/internal/model"
)

// QueryController defines the interface the UI drives.
type QueryController interface {
	SetUpdateCallback(func(*model.QueryState))
	Submit(ctx context.Context, rawInput string) <-chan struct{}
	Snapshot() *model.QueryState
	RandomQueryID() int
}

// Roller produces the random ID for the "random" trigger
type Roller interface {
	// Roll returns a uniform integer in [1, max]
	Roll(max int) (int, error)
}

package app

import (
	"context"
	"log"

	"github.com/five82/padview/internal/spacex"
	"github.com/five82/padview/internal/state"
)

// StartLoader launches the single startup fetch in a background goroutine and
// returns a channel that is closed once the store has been populated.
func StartLoader(ctx context.Context, store *state.Store, fetcher spacex.LaunchpadFetcher) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		load(ctx, store, fetcher)
	}()
	return done
}

func load(ctx context.Context, store *state.Store, fetcher spacex.LaunchpadFetcher) {
	pads, err := fetcher.FetchLaunchpads(ctx)
	if err != nil {
		store.Load(nil, err)
		log.Printf("launchpad fetch failed: %v", err)
		return
	}
	store.Load(pads, nil)
	log.Printf("fetched %d launchpads", len(pads))
}

// SPDX-License-Identifier: MIT
package tokenizer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Batch scanning errors.
var (
	ErrCreatePool = errors.New("failed to create scan pool")
	ErrSubmitScan = errors.New("failed to submit scan")
)

// ScanAll tokenizes independent sources concurrently on a shared goroutine
// pool.
//
// Results preserve source order. Scanner instances share no state, so no
// synchronization beyond completion tracking is required. Cancelling the
// context stops further submissions; scans already submitted run to
// completion.
func ScanAll(ctx context.Context, sources []string, options ...Option) (results []Result, err error) {
	results = make([]Result, len(sources))

	var pool *ants.Pool
	if pool, err = ants.NewPool(runtime.GOMAXPROCS(0)); err != nil {
		err = fmt.Errorf("%w: %v", ErrCreatePool, err)
		return
	}
	defer pool.Release()

	wg := new(sync.WaitGroup)
	for index := range sources {
		select {
		case <-ctx.Done():
			wg.Wait()
			err = ctx.Err()
			return
		default:
		}

		index := index
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			results[index] = New(sources[index], options...).Scan()
		}); err != nil {
			wg.Done()
			wg.Wait()
			err = fmt.Errorf("%w: %v", ErrSubmitScan, err)
			return
		}
	}
	wg.Wait()

	return
}

package opt_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/WinPooh32/opt"
)

// Containers have no internal locking. The supported sharing pattern is
// ownership transfer: each goroutine builds its own instances and hands
// them over a channel, so every instance has exactly one consumer.
func TestResult_ownershipTransfer(t *testing.T) {
	t.Parallel()

	const jobs = 8

	resC := make(chan opt.Result[int, error], jobs)

	eg, _ := errgroup.WithContext(context.Background())

	for i := range jobs {
		eg.Go(func() error {
			if i%2 == 0 {
				resC <- opt.Ok[int, error](i * i)
			} else {
				resC <- opt.Err[int](fmt.Errorf("job %d failed", i))
			}

			return nil
		})
	}

	require.NoError(t, eg.Wait())
	close(resC)

	var oks, errs int

	for r := range resC {
		if r.IsOk() {
			oks++
			assert.GreaterOrEqual(t, r.Unwrap(), 0)
		} else {
			errs++
			assert.ErrorContains(t, r.UnwrapErr(), "failed")
		}
	}

	assert.Equal(t, jobs/2, oks)
	assert.Equal(t, jobs/2, errs)
}

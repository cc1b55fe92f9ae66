package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

type Worker interface {
	Name() string
	Start(context.Context) error
}

// Group supervises a set of workers as one unit: they start together, and
// the first failure cancels the rest. Start returns once every worker has
// stopped, with all failures combined.
type Group []Worker

func (g Group) Start(ctx context.Context) error {
	runCtx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	errCh := make(chan error, len(g))
	var wg sync.WaitGroup
	for _, w := range g {
		wg.Add(1)
		go func(w Worker) {
			defer wg.Done()
			if err := w.Start(runCtx); err != nil {
				errCh <- fmt.Errorf("%s: %w", w.Name(), err)
				cancelFn()
			}
		}(w)
	}

	<-runCtx.Done()
	wg.Wait()
	close(errCh)

	var err error
	for wErr := range errCh {
		err = multierror.Append(err, wErr)
	}
	return err
}

package worker

import (
	"context"
	"sync"
)

type ErrorJob func() error

type Group interface {
	Do(ErrorJob)
	Wait() error
}

type group struct {
	ctxCancel context.CancelFunc
	wg        sync.WaitGroup
	errOnce   sync.Once
	err       error
}

// NewGroup cancels the returned context as soon as any job fails.
func NewGroup(ctx context.Context) (context.Context, Group) {
	ctx, cancel := context.WithCancel(ctx)
	return ctx, &group{ctxCancel: cancel}
}

func (g *group) Do(job ErrorJob) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		if err := job(); err != nil {
			g.errOnce.Do(func() {
				g.err = err
				g.ctxCancel()
			})
		}
	}()
}

func (g *group) Wait() error {
	g.wg.Wait()
	g.ctxCancel()
	return g.err
}

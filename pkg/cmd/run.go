package cmd

import (
	"context"
	"errors"

	"github.com/billup/billup-web/pkg/log"
	"github.com/billup/billup-web/pkg/worker"
)

var errJobCompleted = errors.New("job completed")

// Run starts every job in its own goroutine and stops all of them as soon as the first one returns.
// Only the error of a job that failed on its own is returned.
func Run(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) error {
	groupCtx, group := worker.NewGroup(ctx)
	for _, job := range jobs {
		group.Do(func() error {
			err := job(groupCtx)
			if err == nil || errors.Is(err, groupCtx.Err()) {
				return errJobCompleted
			}

			logger.WithError(err).Error(groupCtx, "job failed")
			return err
		})
	}

	logger.WithField("jobs", len(jobs)).Info(ctx, "app started")
	err := group.Wait()
	logger.Info(ctx, "app stopped")
	if errors.Is(err, errJobCompleted) {
		return nil
	}

	return err
}

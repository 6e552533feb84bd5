package jobs

import (
	"context"
	"time"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const refreshTimeout = 30 * time.Second

// AvailabilityRefresher re-reads stock for the lines of open deliveries.
type AvailabilityRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshAvailabilityCommand) (commands.RefreshAvailabilityResult, error)
}

// AvailabilityRefreshJob keeps the stock flags of Draft and Waiting deliveries in line
// with the ledger so that Waiting orders can be validated once goods arrive.
type AvailabilityRefreshJob struct {
	handler  AvailabilityRefresher
	schedule string
	cron     *cron.Cron
	logger   *logrus.Entry
}

// NewAvailabilityRefreshJob creates the job. The schedule is a cron spec with a
// seconds field, e.g. "*/30 * * * * *".
func NewAvailabilityRefreshJob(handler AvailabilityRefresher, schedule string, logger *logrus.Logger) *AvailabilityRefreshJob {
	entry := logger.WithField("component", "availability_refresh_job")

	return &AvailabilityRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cron.PrintfLogger(entry)),
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(entry))),
		),
		logger: entry,
	}
}

// Start schedules the job and starts the scheduler.
func (j *AvailabilityRefreshJob) Start() error {
	if _, err := j.cron.AddJob(j.schedule, j); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.schedule).Info("Availability refresh job started")
	return nil
}

// Run performs one refresh pass over all open deliveries.
func (j *AvailabilityRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	cmd, err := commands.NewRefreshAvailabilityCommand()
	if err != nil {
		j.logger.WithError(err).Error("Availability refresh job failed")
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.WithError(err).Error("Availability refresh job failed")
		return
	}

	if result.Updated > 0 {
		j.logger.WithFields(logrus.Fields{
			"checked": result.Checked,
			"updated": result.Updated,
		}).Info("Delivery availability changed")
	}
	if result.Skipped > 0 {
		j.logger.WithField("skipped", result.Skipped).Warn("Deliveries changed during availability refresh")
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *AvailabilityRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Availability refresh job stopped")
}

package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultReminderSchedule runs the reminder every day at 09:00.
const DefaultReminderSchedule = "0 9 * * *"

type reminderSender interface {
	Handle(ctx context.Context) (int, error)
}

// EquipmentReminderJob re-sends the equipment return reminder for every order
// still waiting for its loaned equipment.
type EquipmentReminderJob struct {
	sender   reminderSender
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewEquipmentReminderJob uses standard five-field cron expressions. An empty
// schedule falls back to DefaultReminderSchedule.
func NewEquipmentReminderJob(sender reminderSender, schedule string, logger *slog.Logger) *EquipmentReminderJob {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}

	return &EquipmentReminderJob{
		sender:   sender,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "equipment_reminder_job"),
	}
}

func (j *EquipmentReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Equipment reminder job started", "schedule", j.schedule)
	return nil
}

// Run sends one round of reminders.
func (j *EquipmentReminderJob) Run(ctx context.Context) {
	sent, err := j.sender.Handle(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Equipment reminder job failed", "error", err, "sent", sent)
	}
}

// Stop waits for a running round to finish.
func (j *EquipmentReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Equipment reminder job stopped")
}

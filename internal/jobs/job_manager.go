package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	equipmentReminderJob *EquipmentReminderJob
}

func NewJobManager(reminders reminderSender, reminderSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		equipmentReminderJob: NewEquipmentReminderJob(reminders, reminderSchedule, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.equipmentReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start equipment reminder job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.equipmentReminderJob.Stop()
}

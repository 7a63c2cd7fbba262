// Package jobs provides scheduled background tasks for the catering service.
//
// Jobs are built on github.com/robfig/cron/v3 and driven by JobManager:
//
//	jobManager := jobs.NewJobManager(remindersHandler, cfg.ReminderCron, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatalf("failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
//
// EquipmentReminderJob runs on REMINDER_CRON, every day at 09:00 by default,
// and reminds customers who still hold loaned equipment. A failed round is
// logged and retried on the next tick.
package jobs

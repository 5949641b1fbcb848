// Package jobs provides scheduled background tasks around the ordering engine.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field. They observe the
// engine through queries and never write.
//
// # Available Jobs
//
// DailySalesReportJob logs today's and all-time revenue plus the number of recent
// orders, by default at 23:55:00 in the restaurant's timezone.
//
// # Usage
//
//	report := jobs.NewDailySalesReportJob(salesHandler, ports.SystemClock, loc, cfg.ReportCron, logger)
//	jobManager := jobs.NewJobManager(report)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing report is logged and retried at the next scheduled run. Failed job
// starts stop any jobs that were already running.
package jobs

package jobs

import (
	"context"
	"log/slog"
	"time"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultReportSpec runs the report every night just before midnight.
const DefaultReportSpec = "0 55 23 * * *"

// SalesSummaryHandler is the read side the report job depends on.
type SalesSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetSalesSummaryQuery) (queries.GetSalesSummaryQueryResponse, error)
}

// DailySalesReportJob logs the day's revenue on a schedule. It only reads.
type DailySalesReportJob struct {
	handler  SalesSummaryHandler
	clock    ports.Clock
	location *time.Location
	spec     string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDailySalesReportJob creates the report job. spec is a six-field cron expression
// (seconds first) evaluated in location; an empty spec means DefaultReportSpec.
func NewDailySalesReportJob(
	handler SalesSummaryHandler,
	clock ports.Clock,
	location *time.Location,
	spec string,
	logger *slog.Logger,
) *DailySalesReportJob {
	if location == nil {
		location = time.UTC
	}
	if spec == "" {
		spec = DefaultReportSpec
	}
	return &DailySalesReportJob{
		handler:  handler,
		clock:    clock,
		location: location,
		spec:     spec,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(location)),
		logger:   logger.With("component", "daily_sales_report_job"),
	}
}

// Start schedules the report. An invalid spec is returned as an error.
func (j *DailySalesReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily sales report job started", "spec", j.spec)
	return nil
}

// Run produces one report immediately.
func (j *DailySalesReportJob) Run(ctx context.Context) {
	today := j.clock.Now().In(j.location)

	query, err := queries.NewGetSalesSummaryQuery(today)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily sales report failed", "error", err)
		return
	}

	summary, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily sales report failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily sales report",
		"day", today.Format(time.DateOnly),
		"today_revenue", summary.TodayRevenue.String(),
		"total_revenue", summary.TotalRevenue.String(),
		"recent_orders", len(summary.RecentOrders),
	)
}

// Stop stops the schedule and waits for a running report to finish.
func (j *DailySalesReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily sales report job stopped")
}

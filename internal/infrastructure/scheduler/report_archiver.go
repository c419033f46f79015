// Package scheduler runs the nightly job that renders the previous day's
// order report and ships it to the report archive.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	reportapp "github.com/tastehunt/backend/internal/application/report"
	"github.com/tastehunt/backend/internal/domain/identity"
	"github.com/tastehunt/backend/internal/domain/report"
	"github.com/tastehunt/backend/internal/domain/shared"
	"github.com/tastehunt/backend/internal/infrastructure/storage"
	"go.uber.org/zap"
)

// cronTickerInterval is the interval at which the archiver checks for execution
const cronTickerInterval = 1 * time.Minute

// DailyReportRenderer renders the report for one full calendar day.
type DailyReportRenderer interface {
	RenderDailyReport(ctx context.Context, day time.Time, caller identity.Caller) (*reportapp.RenderedDocument, error)
}

// ReportArchiverConfig holds configuration for the nightly report archiver
type ReportArchiverConfig struct {
	// Enabled indicates if the archiver is enabled
	Enabled bool
	// CronHour is the hour (0-23) to run the nightly archive
	CronHour int
	// CronMinute is the minute (0-59) to run the nightly archive
	CronMinute int
	// DailyCronSchedule is the cron expression (parsed to extract hour/minute)
	DailyCronSchedule string
	// JobTimeout is the maximum time a single archive run can take
	JobTimeout time.Duration
}

// DefaultReportArchiverConfig returns default archiver configuration.
// Defaults to running at 2:00 AM daily.
func DefaultReportArchiverConfig() ReportArchiverConfig {
	return ReportArchiverConfig{
		Enabled:           true,
		CronHour:          2,
		CronMinute:        0,
		DailyCronSchedule: "0 2 * * *",
		JobTimeout:        5 * time.Minute,
	}
}

// ParseCronSchedule parses a cron expression "minute hour * * *" to extract hour and minute.
// Returns defaults (2:00) if the expression is empty or has too few fields.
func ParseCronSchedule(cronExpr string) (hour, minute int, err error) {
	hour = 2
	minute = 0

	if cronExpr == "" {
		return hour, minute, nil
	}

	parts := strings.Fields(cronExpr)
	if len(parts) < 2 {
		return hour, minute, nil
	}

	if parts[0] != "*" {
		if val, parseErr := parseIntOrDefault(parts[0], 0); parseErr == nil {
			minute = val
		}
	}
	if parts[1] != "*" {
		if val, parseErr := parseIntOrDefault(parts[1], 2); parseErr == nil {
			hour = val
		}
	}

	if minute < 0 || minute > 59 {
		return 2, 0, fmt.Errorf("minute must be 0-59, got %d", minute)
	}
	if hour < 0 || hour > 23 {
		return 2, 0, fmt.Errorf("hour must be 0-23, got %d", hour)
	}

	return hour, minute, nil
}

// parseIntOrDefault parses an int string or returns default
func parseIntOrDefault(s string, defaultVal int) (int, error) {
	if s == "" || s == "*" {
		return defaultVal, nil
	}
	var val int
	for _, c := range s {
		if c < '0' || c > '9' {
			return defaultVal, ErrInvalidConfig
		}
		val = val*10 + int(c-'0')
	}
	return val, nil
}

// ReportArchiver renders the daily order report once per night and stores
// the PDF in the report archive.
type ReportArchiver struct {
	config   ReportArchiverConfig
	renderer DailyReportRenderer
	archive  storage.ReportArchive
	clock    report.Clock
	logger   *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool

	lastRunAt *time.Time
	nextRunAt *time.Time
}

// NewReportArchiver creates a new nightly report archiver
func NewReportArchiver(
	config ReportArchiverConfig,
	renderer DailyReportRenderer,
	archive storage.ReportArchive,
	clock report.Clock,
	logger *zap.Logger,
) *ReportArchiver {
	return &ReportArchiver{
		config:   config,
		renderer: renderer,
		archive:  archive,
		clock:    clock,
		logger:   logger,
	}
}

// Start starts the archiver loop
func (a *ReportArchiver) Start(ctx context.Context) error {
	a.mu.Lock()
	if a.isRunning {
		a.mu.Unlock()
		return nil
	}
	a.isRunning = true
	a.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	a.calculateNextRunTime()

	a.wg.Add(1)
	go a.cronLoop(ctx)

	a.logger.Info("Report archiver started",
		zap.Int("cron_hour", a.config.CronHour),
		zap.Int("cron_minute", a.config.CronMinute),
		zap.Timep("next_run_at", a.nextRunAt),
	)

	return nil
}

// Stop stops the archiver and waits for any in-flight run to finish
func (a *ReportArchiver) Stop(ctx context.Context) error {
	a.mu.Lock()
	if !a.isRunning {
		a.mu.Unlock()
		return nil
	}
	a.isRunning = false
	a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("Report archiver stopped")
		return nil
	case <-ctx.Done():
		a.logger.Warn("Report archiver stop timed out")
		return ctx.Err()
	}
}

// cronLoop runs the main archiver loop
func (a *ReportArchiver) cronLoop(ctx context.Context) {
	defer a.wg.Done()

	ticker := time.NewTicker(cronTickerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if a.shouldRun(now) {
				a.runNightlyArchive(ctx)
				a.calculateNextRunTime()
			}
		}
	}
}

// shouldRun checks if the archiver should run at the given time
func (a *ReportArchiver) shouldRun(now time.Time) bool {
	return now.Hour() == a.config.CronHour && now.Minute() == a.config.CronMinute
}

// calculateNextRunTime calculates the next run time
func (a *ReportArchiver) calculateNextRunTime() {
	now := a.clock.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), a.config.CronHour, a.config.CronMinute, 0, 0, now.Location())
	if now.After(next) {
		next = next.AddDate(0, 0, 1)
	}

	a.mu.Lock()
	a.nextRunAt = &next
	a.mu.Unlock()
}

// runNightlyArchive renders yesterday's full-day order report and stores it.
// A day with no orders is logged and skipped, not treated as a failure.
func (a *ReportArchiver) runNightlyArchive(ctx context.Context) {
	now := a.clock.Now()
	a.mu.Lock()
	a.lastRunAt = &now
	a.mu.Unlock()

	if a.config.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.JobTimeout)
		defer cancel()
	}

	day := now.AddDate(0, 0, -1)
	a.logger.Info("Starting nightly report archive run",
		zap.String("day", day.Format("2006-01-02")),
	)

	// The archive run acts as a cashier so revenue totals are included.
	caller := identity.Caller{ID: uuid.Nil, Role: identity.RoleCashier}
	doc, err := a.renderer.RenderDailyReport(ctx, day, caller)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			a.logger.Info("No orders in period, skipping archive run")
			return
		}
		a.logger.Error("Failed to render nightly report", zap.Error(err))
		return
	}

	key := a.archiveKey(day)
	location, err := a.archive.Store(ctx, key, doc.Data, doc.ContentType)
	if err != nil {
		a.logger.Error("Failed to archive nightly report",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}

	a.logger.Info("Nightly report archived",
		zap.String("key", key),
		zap.String("location", location),
		zap.Int("bytes", len(doc.Data)),
	)
}

// archiveKey builds the archive key for the day the report covers
func (a *ReportArchiver) archiveKey(day time.Time) string {
	return fmt.Sprintf("daily/%s.pdf", day.Format("2006-01-02"))
}

// TriggerManualRun triggers a manual archive run.
// Uses a background context so the run survives the HTTP request that asked
// for it; the run is still tracked so Stop waits for it.
func (a *ReportArchiver) TriggerManualRun(ctx context.Context) error {
	a.mu.Lock()
	if !a.isRunning {
		a.mu.Unlock()
		return ErrArchiverNotRunning
	}
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		a.runNightlyArchive(context.Background())
	}()
	return nil
}

// GetStatus returns the current status of the archiver
func (a *ReportArchiver) GetStatus() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	return map[string]any{
		"enabled":     a.config.Enabled,
		"is_running":  a.isRunning,
		"cron_hour":   a.config.CronHour,
		"cron_minute": a.config.CronMinute,
		"last_run_at": a.lastRunAt,
		"next_run_at": a.nextRunAt,
	}
}

// GetNextRunAt returns when the next scheduled run will occur
func (a *ReportArchiver) GetNextRunAt() *time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nextRunAt
}

// GetLastRunAt returns when the last run occurred
func (a *ReportArchiver) GetLastRunAt() *time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastRunAt
}

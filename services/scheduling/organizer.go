package scheduling

import (
	"context"
	"fmt"
	"sync"

	"shuttlesync/models"
	"shuttlesync/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Advisor is an optional layer that comments on a booked slot. It never
// influences the run outcome; failures are logged and dropped.
type Advisor interface {
	AdviseSlot(ctx context.Context, w models.Window, activity string) (string, error)
}

// Engine coordinates one scheduling run across the configured parties:
// fetch calendars, scan free windows per party, intersect, select, book.
type Engine struct {
	Parties     []Party
	HorizonDays int
	Catalog     []models.Interval
	Advisor     Advisor
}

// Schedule runs the full pipeline and always returns a report; failures are
// folded into its status and messages rather than surfaced as errors, so one
// party's problem can never abort reporting on the other. A run is not
// reentrant with itself: two concurrent runs may double-book the same
// window.
func (e *Engine) Schedule(ctx context.Context, activity string) models.ScheduleReport {
	logger := utils.GetLogger()
	report := models.ScheduleReport{
		RunID:           uuid.New().String(),
		Status:          models.StatusError,
		AllCommonSlots:  []models.Window{},
		PartySlotCounts: make(map[string]int, len(e.Parties)),
	}
	say := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		report.Messages = append(report.Messages, msg)
		logger.Info(msg, zap.String("runID", report.RunID))
	}

	catalog := e.Catalog
	if len(catalog) == 0 {
		catalog = models.DefaultWindowCatalog()
	}

	// Fetching calendars. A badminton match needs every party, so an
	// unreachable diary aborts the run instead of degrading to partial
	// scheduling.
	say("Fetching diaries from %d agents...", len(e.Parties))
	dates := make([][]string, len(e.Parties))
	for i, p := range e.Parties {
		cal, err := p.Diary(ctx)
		if err != nil {
			say("Failed to fetch %s's diary: %v", p.Name(), err)
			return report
		}
		all := cal.Dates()
		if len(all) > e.HorizonDays {
			all = all[:e.HorizonDays]
		}
		dates[i] = all
		say("Fetched %s's diary covering %d days", p.Name(), len(cal))
	}

	// Per-party scans are read-only and independent; run them concurrently
	// and join before intersecting.
	freeSets := make([]WindowSet, len(e.Parties))
	var wg sync.WaitGroup
	for i, p := range e.Parties {
		wg.Add(1)
		go func(i int, p Party) {
			defer wg.Done()
			freeSets[i] = FreeWindows(ctx, p, dates[i], catalog, activity)
		}(i, p)
	}
	wg.Wait()

	for i, p := range e.Parties {
		report.PartySlotCounts[p.Name()] = len(freeSets[i])
		say("%s is available for %d slots", p.Name(), len(freeSets[i]))
	}

	common := Intersect(freeSets...)
	report.CommonSlotsFound = len(common)
	report.AllCommonSlots = common.Sorted()
	if len(common) == 0 {
		say("No common available slots found")
		report.Status = models.StatusNoSlots
		return report
	}
	say("Found %d common available slots", len(common))
	report.Status = models.StatusSlotsFound

	selected := SelectBest(common)
	report.SelectedSlot = &selected
	say("Selected slot: %s %s", selected.Date, selected.Interval)

	report.BookingResults = Book(ctx, e.Parties, selected, activity)
	for _, r := range report.BookingResults {
		if r.Committed {
			say("Booked with %s", r.Party)
		} else {
			say("Booking with %s failed: %s", r.Party, r.Error)
		}
	}
	report.Status = ClassifyBooking(report.BookingResults)

	if e.Advisor != nil && report.Status == models.StatusBooked {
		if note, err := e.Advisor.AdviseSlot(ctx, selected, activity); err != nil {
			logger.Warn("advisor note failed", zap.String("runID", report.RunID), zap.Error(err))
		} else if note != "" {
			say("Advisor: %s", note)
		}
	}
	return report
}

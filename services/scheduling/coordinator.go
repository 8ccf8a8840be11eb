package scheduling

import (
	"context"

	"shuttlesync/models"
	"shuttlesync/utils"

	"go.uber.org/zap"
)

// Book commits the window to every party independently and unconditionally.
// A failure at one party never rolls back an earlier commit and never stops
// the remaining parties: booking is best-effort, not a two-phase commit.
// There is also no reservation between selection and booking, so a
// concurrent run may consume the chosen window in that gap.
func Book(ctx context.Context, parties []Party, w models.Window, activity string) []models.BookingResult {
	logger := utils.GetLogger()
	results := make([]models.BookingResult, 0, len(parties))

	for _, p := range parties {
		appt, err := p.Book(ctx, w, activity)
		if err != nil {
			logger.Error("booking failed for party",
				zap.String("party", p.Name()),
				zap.String("date", w.Date),
				zap.String("window", w.Interval.String()),
				zap.Error(err))
			results = append(results, models.BookingResult{
				Party: p.Name(),
				Error: err.Error(),
			})
			continue
		}
		results = append(results, models.BookingResult{
			Party:       p.Name(),
			Committed:   true,
			Appointment: &appt,
		})
	}
	return results
}

// ClassifyBooking maps per-party results to the run status. The three
// outcomes stay distinct so a caller can reconcile partial commits by hand.
func ClassifyBooking(results []models.BookingResult) string {
	if len(results) == 0 {
		return models.StatusBookingFailed
	}
	committed := 0
	for _, r := range results {
		if r.Committed {
			committed++
		}
	}
	switch {
	case committed == len(results):
		return models.StatusBooked
	case committed > 0:
		return models.StatusPartiallyBooked
	default:
		return models.StatusBookingFailed
	}
}

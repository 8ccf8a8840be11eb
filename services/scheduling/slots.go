package scheduling

import (
	"context"

	"shuttlesync/models"
	"shuttlesync/utils"

	"go.uber.org/zap"
)

// FreeWindows scans one party's availability across the given dates and the
// candidate catalog, returning the set of windows the party is free for.
// No ranking happens here. A failed or timed-out check marks that window
// unavailable for the party rather than failing the scan.
func FreeWindows(ctx context.Context, p Party, dates []string, catalog []models.Interval, activity string) WindowSet {
	logger := utils.GetLogger()
	free := make(WindowSet)

	for _, date := range dates {
		for _, iv := range catalog {
			w := models.Window{Date: date, Interval: iv}
			result, err := p.Check(ctx, w, activity)
			if err != nil {
				logger.Warn("availability check failed, treating window as busy",
					zap.String("party", p.Name()),
					zap.String("date", date),
					zap.String("window", iv.String()),
					zap.Error(err))
				continue
			}
			if result.Available {
				free.Add(w)
			}
		}
	}
	return free
}

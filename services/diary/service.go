package diary

import (
	"fmt"

	"shuttlesync/models"
	"shuttlesync/utils"

	"go.uber.org/zap"
)

func (s *DefaultDiaryService) Owner() string {
	return s.Repo.Owner()
}

func (s *DefaultDiaryService) FullDiary() models.Calendar {
	return s.Repo.Calendar()
}

// CheckWindow runs the deterministic availability rule against the stored
// day schedule. When the window is blocked it also suggests the earliest
// catalog window that is still free on the same date.
func (s *DefaultDiaryService) CheckWindow(date string, window models.Interval) (models.CheckResult, error) {
	schedule, err := s.Repo.Schedule(date)
	if err != nil {
		return models.CheckResult{}, err
	}
	result := CheckAvailability(schedule, window)
	if !result.Available {
		result.Suggestion = s.suggestAlternative(schedule, window)
	}
	return result, nil
}

func (s *DefaultDiaryService) BookAppointment(date string, window models.Interval, activity string) (models.Appointment, error) {
	appt, err := s.Repo.AddAppointment(date, window, activity)
	if err != nil {
		return models.Appointment{}, err
	}
	utils.GetLogger().Info("appointment booked",
		zap.String("party", s.Repo.Owner()),
		zap.String("date", date),
		zap.String("time", window.String()),
		zap.String("activity", activity))
	return appt, nil
}

func (s *DefaultDiaryService) Reset() models.Calendar {
	cal := s.Repo.Reset()
	utils.GetLogger().Info("diary reset to default schedule",
		zap.String("party", s.Repo.Owner()),
		zap.Int("days", len(cal)))
	return cal
}

// suggestAlternative returns the first free catalog window on the same day,
// or "" when the whole day is blocked.
func (s *DefaultDiaryService) suggestAlternative(schedule models.DaySchedule, requested models.Interval) string {
	for _, iv := range s.Catalog {
		if iv == requested {
			continue
		}
		if CheckAvailability(schedule, iv).Available {
			return fmt.Sprintf("try %s on %s", iv, schedule.Date)
		}
	}
	return ""
}

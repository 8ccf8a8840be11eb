package diary

import (
	diaryRepo "shuttlesync/database/repository/diary"
	"shuttlesync/models"
)

// DiaryService exposes one party's calendar operations: the read/check/book
// contract the organizer consumes, plus the destructive reset.
type DiaryService interface {
	Owner() string
	FullDiary() models.Calendar
	CheckWindow(date string, window models.Interval) (models.CheckResult, error)
	BookAppointment(date string, window models.Interval, activity string) (models.Appointment, error)
	Reset() models.Calendar
}

// DefaultDiaryService implements DiaryService over a diary repository.
type DefaultDiaryService struct {
	Repo diaryRepo.DiaryRepository
	// Catalog is used to compute alternative-slot suggestions when a
	// requested window is blocked.
	Catalog []models.Interval
}

package scheduling_test

import (
	"context"
	"testing"

	"shuttlesync/models"
)

// fakeParty scripts a collaborator: which windows it is free for, and
// whether its diary, check or book calls fail.
type fakeParty struct {
	name     string
	calendar models.Calendar
	free     map[string]bool
	diaryErr error
	checkErr error
	bookErr  error
	booked   []models.Window
}

func (p *fakeParty) Name() string { return p.name }

func (p *fakeParty) Diary(ctx context.Context) (models.Calendar, error) {
	if p.diaryErr != nil {
		return nil, p.diaryErr
	}
	return p.calendar, nil
}

func (p *fakeParty) Check(ctx context.Context, w models.Window, activity string) (models.CheckResult, error) {
	if p.checkErr != nil {
		return models.CheckResult{}, p.checkErr
	}
	return models.CheckResult{Available: p.free[w.Key()]}, nil
}

func (p *fakeParty) Book(ctx context.Context, w models.Window, activity string) (models.Appointment, error) {
	if p.bookErr != nil {
		return models.Appointment{}, p.bookErr
	}
	p.booked = append(p.booked, w)
	return models.Appointment{Interval: w.Interval, Activity: activity, Kind: models.KindBooked}, nil
}

func mkWindow(t *testing.T, date, interval string) models.Window {
	t.Helper()
	iv, err := models.ParseInterval(interval)
	if err != nil {
		t.Fatalf("bad interval %s: %v", interval, err)
	}
	return models.Window{Date: date, Interval: iv}
}

func mkCalendar(dates ...string) models.Calendar {
	cal := make(models.Calendar, len(dates))
	for _, d := range dates {
		cal[d] = models.DaySchedule{Date: d}
	}
	return cal
}

func freeMap(windows ...models.Window) map[string]bool {
	m := make(map[string]bool, len(windows))
	for _, w := range windows {
		m[w.Key()] = true
	}
	return m
}

package scheduling

import (
	"context"

	"shuttlesync/models"
)

// Party is one collaborator in a scheduling run. Each party owns its own
// calendar; the organizer only ever reads it or asks the party itself to
// mutate it.
type Party interface {
	Name() string
	// Diary fetches the party's full calendar.
	Diary(ctx context.Context) (models.Calendar, error)
	// Check asks whether the party is free for the window.
	Check(ctx context.Context, w models.Window, activity string) (models.CheckResult, error)
	// Book commits the window into the party's calendar.
	Book(ctx context.Context, w models.Window, activity string) (models.Appointment, error)
}

// localDiary is the slice of the party-side diary service the organizer
// needs when a party runs in the same process.
type localDiary interface {
	Owner() string
	FullDiary() models.Calendar
	CheckWindow(date string, window models.Interval) (models.CheckResult, error)
	BookAppointment(date string, window models.Interval, activity string) (models.Appointment, error)
}

// LocalParty adapts an in-process diary service to the Party interface.
type LocalParty struct {
	Svc localDiary
}

func (p LocalParty) Name() string {
	return p.Svc.Owner()
}

func (p LocalParty) Diary(ctx context.Context) (models.Calendar, error) {
	return p.Svc.FullDiary(), nil
}

func (p LocalParty) Check(ctx context.Context, w models.Window, activity string) (models.CheckResult, error) {
	return p.Svc.CheckWindow(w.Date, w.Interval)
}

func (p LocalParty) Book(ctx context.Context, w models.Window, activity string) (models.Appointment, error) {
	return p.Svc.BookAppointment(w.Date, w.Interval, activity)
}

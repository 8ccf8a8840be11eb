// Package diary owns one party's appointment calendar. Each party has its
// own repository instance; no two repositories ever interact directly.
package diary

import (
	"errors"

	"shuttlesync/models"
)

// ErrDateOutOfHorizon is returned when a requested date is absent from the
// repository's horizon. It is a client error, never retried.
var ErrDateOutOfHorizon = errors.New("date not in diary range")

// DiaryRepository defines data-access methods for a single party's calendar.
type DiaryRepository interface {
	// Owner returns the party name the diary belongs to.
	Owner() string
	// Horizon returns the covered dates in ascending order.
	Horizon() []string
	// Schedule returns the day schedule for a date, or ErrDateOutOfHorizon.
	Schedule(date string) (models.DaySchedule, error)
	// Calendar returns a copy of the full calendar.
	Calendar() models.Calendar
	// AddAppointment appends a booked appointment to the given date and
	// re-sorts that day by start time.
	AddAppointment(date string, iv models.Interval, activity string) (models.Appointment, error)
	// Reset regenerates the default horizon from the seed profile,
	// discarding all bookings. Destructive by design.
	Reset() models.Calendar
}

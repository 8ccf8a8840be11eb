package diary

import (
	"sort"
	"sync"
	"time"

	"shuttlesync/models"
)

// memoryDiaryRepo is the in-memory DiaryRepository. Mutations are
// append-only plus full-replace (Reset); a single RWMutex gives the
// single-writer semantics each party's calendar requires.
type memoryDiaryRepo struct {
	mu          sync.RWMutex
	owner       string
	seed        Seed
	horizonDays int
	calendar    models.Calendar
}

// NewMemoryDiaryRepo creates a repository whose horizon starts today and
// spans horizonDays consecutive days.
func NewMemoryDiaryRepo(owner string, seed Seed, horizonDays int) DiaryRepository {
	r := &memoryDiaryRepo{
		owner:       owner,
		seed:        seed,
		horizonDays: horizonDays,
	}
	r.calendar = generateCalendar(seed, horizonDays, time.Now())
	return r
}

func (r *memoryDiaryRepo) Owner() string {
	return r.owner
}

func (r *memoryDiaryRepo) Horizon() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.calendar.Dates()
}

func (r *memoryDiaryRepo) Schedule(date string) (models.DaySchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	day, ok := r.calendar[date]
	if !ok {
		return models.DaySchedule{}, ErrDateOutOfHorizon
	}
	return copyDay(day), nil
}

func (r *memoryDiaryRepo) Calendar() models.Calendar {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(models.Calendar, len(r.calendar))
	for date, day := range r.calendar {
		out[date] = copyDay(day)
	}
	return out
}

func (r *memoryDiaryRepo) AddAppointment(date string, iv models.Interval, activity string) (models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day, ok := r.calendar[date]
	if !ok {
		return models.Appointment{}, ErrDateOutOfHorizon
	}
	appt := models.Appointment{
		Interval: iv,
		Activity: activity,
		Kind:     models.KindBooked,
	}
	day.Appointments = append(day.Appointments, appt)
	sort.SliceStable(day.Appointments, func(i, j int) bool {
		return day.Appointments[i].Interval.Start < day.Appointments[j].Interval.Start
	})
	r.calendar[date] = day
	return appt, nil
}

func (r *memoryDiaryRepo) Reset() models.Calendar {
	r.mu.Lock()
	r.calendar = generateCalendar(r.seed, r.horizonDays, time.Now())
	r.mu.Unlock()
	return r.Calendar()
}

func copyDay(day models.DaySchedule) models.DaySchedule {
	out := day
	out.Appointments = make([]models.Appointment, len(day.Appointments))
	copy(out.Appointments, day.Appointments)
	return out
}

func generateCalendar(seed Seed, horizonDays int, today time.Time) models.Calendar {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	cal := make(models.Calendar, horizonDays)
	for offset := 0; offset < horizonDays; offset++ {
		day := start.AddDate(0, 0, offset)
		date := day.Format("2006-01-02")
		cal[date] = models.DaySchedule{
			Date:         date,
			Day:          day.Weekday().String(),
			Appointments: seed(offset),
		}
	}
	return cal
}

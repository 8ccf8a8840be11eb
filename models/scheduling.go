package models

import "encoding/json"

// Window is a candidate meeting slot: one catalog interval on one date.
// Ephemeral — produced by the slot scan, consumed by selection and booking.
type Window struct {
	Date     string
	Interval Interval
}

// Key identifies a window across parties for set intersection.
func (w Window) Key() string {
	return w.Date + "_" + w.Interval.String()
}

type windowWire struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (w Window) MarshalJSON() ([]byte, error) {
	return json.Marshal(windowWire{
		Date:      w.Date,
		StartTime: w.Interval.Start.String(),
		EndTime:   w.Interval.End.String(),
	})
}

func (w *Window) UnmarshalJSON(data []byte) error {
	var wire windowWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	iv, err := NewInterval(wire.StartTime, wire.EndTime)
	if err != nil {
		return err
	}
	w.Date = wire.Date
	w.Interval = iv
	return nil
}

// CheckResult is the availability verdict for one window against one
// day schedule. Conflicts carries every overlapping appointment, including
// reschedulable ones, even when the window is still available.
type CheckResult struct {
	Available  bool
	Reason     string
	Conflicts  []Appointment
	Suggestion string
}

// ConflictLabels returns just the activity names, the shape the HTTP
// boundary reports.
func (r CheckResult) ConflictLabels() []string {
	labels := make([]string, 0, len(r.Conflicts))
	for _, a := range r.Conflicts {
		labels = append(labels, a.Activity)
	}
	return labels
}

// BookingResult records one party's commit attempt. Booking is best-effort:
// a failed party never rolls back an earlier committed one.
type BookingResult struct {
	Party       string       `json:"party"`
	Committed   bool         `json:"committed"`
	Appointment *Appointment `json:"appointment,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// Terminal statuses of a scheduling run. Booked, PartiallyBooked and
// BookingFailed are deliberately distinct so the caller can reconcile
// partial commits by hand.
const (
	StatusSlotsFound      = "slots_found"
	StatusNoSlots         = "no_slots"
	StatusBooked          = "booked"
	StatusPartiallyBooked = "partially_booked"
	StatusBookingFailed   = "booking_failed"
	StatusError           = "error"
)

// ScheduleReport is the outcome of one organizer run.
type ScheduleReport struct {
	RunID            string          `json:"run_id"`
	Status           string          `json:"status"`
	SelectedSlot     *Window         `json:"selected_slot"`
	CommonSlotsFound int             `json:"common_slots_found"`
	AllCommonSlots   []Window        `json:"all_common_slots"`
	Messages         []string        `json:"messages"`
	BookingResults   []BookingResult `json:"booking_results,omitempty"`

	// Free-window counts per party, emitted by the handler as
	// "<party>_available_slots" keys.
	PartySlotCounts map[string]int `json:"-"`
}

// TimeSlotQuery is the request body shared by check_availability and
// book_appointment. Requests carry split start/end fields even though
// appointment records join them with a hyphen.
type TimeSlotQuery struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Activity  string `json:"activity" binding:"required"`
}

// ParsedInterval parses the query's split time fields.
func (q TimeSlotQuery) ParsedInterval() (Interval, error) {
	return NewInterval(q.StartTime, q.EndTime)
}

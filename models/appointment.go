package models

import "encoding/json"

// Kind classifies a diary appointment. Only fixed appointments block
// availability; flexible and leisure entries can be rescheduled.
type Kind string

const (
	KindFixed    Kind = "fixed"
	KindFlexible Kind = "flexible"
	KindLeisure  Kind = "leisure"
	KindBooked   Kind = "booked"
)

// Blocks reports whether an appointment of this kind makes its window
// unavailable.
func (k Kind) Blocks() bool {
	return k == KindFixed
}

// Appointment is a single typed diary entry.
type Appointment struct {
	Interval Interval
	Activity string
	Kind     Kind
}

// appointmentWire is the JSON shape used by the agents: the interval is a
// single hyphen-joined "HH:MM-HH:MM" string under "time".
type appointmentWire struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Type     string `json:"type"`
}

func (a Appointment) MarshalJSON() ([]byte, error) {
	return json.Marshal(appointmentWire{
		Time:     a.Interval.String(),
		Activity: a.Activity,
		Type:     string(a.Kind),
	})
}

func (a *Appointment) UnmarshalJSON(data []byte) error {
	var w appointmentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	iv, err := ParseInterval(w.Time)
	if err != nil {
		return err
	}
	a.Interval = iv
	a.Activity = w.Activity
	a.Kind = Kind(w.Type)
	return nil
}

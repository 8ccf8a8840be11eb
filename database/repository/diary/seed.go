package diary

import "shuttlesync/models"

// Seed produces the default appointment list for one day of the horizon.
// dayOffset is the day's distance from the start of the horizon, so the
// generated weekly texture is stable across resets.
type Seed func(dayOffset int) []models.Appointment

func appt(interval, activity string, kind models.Kind) models.Appointment {
	iv, err := models.ParseInterval(interval)
	if err != nil {
		panic("diary: bad seed interval " + interval)
	}
	return models.Appointment{Interval: iv, Activity: activity, Kind: kind}
}

// BeanSeed is Mr. Bean's default day. 14:00-16:00 stays free every day so
// the two parties always share at least one common window.
func BeanSeed(dayOffset int) []models.Appointment {
	appts := []models.Appointment{
		appt("08:00-09:00", "Breakfast with Teddy", models.KindFlexible),
		appt("09:00-10:00", "Morning walk in park", models.KindLeisure),
		appt("10:00-12:00", "Work at office", models.KindFixed),
		appt("12:00-13:00", "Lunch break", models.KindFlexible),
		appt("13:00-14:00", "Quick errands", models.KindLeisure),
		appt("16:00-17:00", "Tea time", models.KindFlexible),
		appt("17:00-18:00", "Hobbies and TV", models.KindLeisure),
		appt("18:00-19:00", "Dinner preparation", models.KindFlexible),
	}
	if dayOffset%3 == 0 {
		appts = insertAt(appts, 3, appt("12:30-13:00", "Lunch with friends", models.KindFlexible))
	}
	if dayOffset%5 == 0 {
		appts = insertAt(appts, 2, appt("09:30-10:00", "Check emails", models.KindLeisure))
	}
	return appts
}

// JoySeed is Mr. Joy's default day, with a slightly different texture from
// Bean's. Some leisure blocks harden into fixed commitments on a cycle.
func JoySeed(dayOffset int) []models.Appointment {
	appts := []models.Appointment{
		appt("08:00-09:00", "Morning yoga and meditation", models.KindLeisure),
		appt("09:00-10:00", "Breakfast", models.KindFlexible),
		appt("10:00-12:00", "Client meetings", models.KindFixed),
		appt("12:00-13:00", "Lunch and rest", models.KindFlexible),
		appt("13:00-15:00", "Gym workout", models.KindLeisure),
		appt("15:00-16:00", "Coffee break", models.KindFlexible),
		appt("16:00-18:00", "Reading and relaxation", models.KindLeisure),
		appt("18:00-19:00", "Dinner time", models.KindFlexible),
	}
	if dayOffset%2 == 0 {
		appts[4] = appt("13:00-15:00", "Business workshop", models.KindFixed)
	}
	if dayOffset%5 == 0 {
		appts[6] = appt("16:00-18:00", "Family gathering", models.KindFixed)
	}
	return appts
}

func insertAt(appts []models.Appointment, i int, a models.Appointment) []models.Appointment {
	appts = append(appts, models.Appointment{})
	copy(appts[i+1:], appts[i:])
	appts[i] = a
	return appts
}

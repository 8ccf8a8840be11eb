package diary_test

import (
	"errors"
	"testing"

	diaryRepo "shuttlesync/database/repository/diary"
	"shuttlesync/models"
	"shuttlesync/services/diary"
)

func day(t *testing.T, appts ...models.Appointment) models.DaySchedule {
	t.Helper()
	return models.DaySchedule{Date: "2025-01-01", Day: "Wednesday", Appointments: appts}
}

func appt(t *testing.T, interval, activity string, kind models.Kind) models.Appointment {
	t.Helper()
	iv, err := models.ParseInterval(interval)
	if err != nil {
		t.Fatalf("bad interval %s: %v", interval, err)
	}
	return models.Appointment{Interval: iv, Activity: activity, Kind: kind}
}

func window(t *testing.T, s string) models.Interval {
	t.Helper()
	iv, err := models.ParseInterval(s)
	if err != nil {
		t.Fatalf("bad window %s: %v", s, err)
	}
	return iv
}

func TestCheckAvailability_FixedConflictBlocks(t *testing.T) {
	schedule := day(t, appt(t, "10:00-12:00", "Work", models.KindFixed))

	result := diary.CheckAvailability(schedule, window(t, "10:00-12:00"))
	if result.Available {
		t.Fatal("window over a fixed appointment must be unavailable")
	}
	labels := result.ConflictLabels()
	if len(labels) != 1 || labels[0] != "Work" {
		t.Fatalf("conflicts = %v, want [Work]", labels)
	}
}

func TestCheckAvailability_LeisureOnlyStaysAvailable(t *testing.T) {
	schedule := day(t, appt(t, "13:00-14:00", "Quick walk", models.KindLeisure))

	result := diary.CheckAvailability(schedule, window(t, "13:00-14:00"))
	if !result.Available {
		t.Fatal("leisure-only overlap must stay available")
	}
	labels := result.ConflictLabels()
	if len(labels) != 1 || labels[0] != "Quick walk" {
		t.Fatalf("conflicts = %v, want [Quick walk]", labels)
	}
}

func TestCheckAvailability_NoOverlap(t *testing.T) {
	schedule := day(t,
		appt(t, "08:00-10:00", "Work", models.KindFixed),
		appt(t, "16:00-17:00", "Tea", models.KindFlexible),
	)

	result := diary.CheckAvailability(schedule, window(t, "10:00-12:00"))
	if !result.Available {
		t.Fatalf("free window reported unavailable: %s", result.Reason)
	}
	if len(result.Conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %v", result.ConflictLabels())
	}
}

func TestCheckAvailability_MixedConflictsReportsAll(t *testing.T) {
	schedule := day(t,
		appt(t, "10:00-11:00", "Standup", models.KindFixed),
		appt(t, "11:00-12:00", "Gym", models.KindLeisure),
	)

	result := diary.CheckAvailability(schedule, window(t, "10:30-11:30"))
	if result.Available {
		t.Fatal("fixed overlap must block even alongside movable conflicts")
	}
	if len(result.Conflicts) != 2 {
		t.Fatalf("conflicts = %v, want both overlapping appointments", result.ConflictLabels())
	}
}

func TestCheckAvailability_ToleratesOverlappingRawData(t *testing.T) {
	// The seed generator does not guarantee non-overlapping entries.
	schedule := day(t,
		appt(t, "12:00-13:00", "Lunch break", models.KindFlexible),
		appt(t, "12:30-13:00", "Lunch with friends", models.KindFlexible),
	)

	result := diary.CheckAvailability(schedule, window(t, "12:00-14:00"))
	if !result.Available {
		t.Fatal("flexible-only overlaps must stay available")
	}
	if len(result.Conflicts) != 2 {
		t.Fatalf("conflicts = %v, want both entries", result.ConflictLabels())
	}
}

func TestCheckAvailability_IsDeterministic(t *testing.T) {
	schedule := day(t,
		appt(t, "10:00-12:00", "Work", models.KindFixed),
		appt(t, "13:00-14:00", "Errands", models.KindLeisure),
	)
	w := window(t, "11:00-13:00")

	first := diary.CheckAvailability(schedule, w)
	for i := 0; i < 5; i++ {
		again := diary.CheckAvailability(schedule, w)
		if again.Available != first.Available || again.Reason != first.Reason ||
			len(again.Conflicts) != len(first.Conflicts) {
			t.Fatal("checker returned different results for the same inputs")
		}
	}
}

func TestCheckWindow_SuggestsAlternativeWhenBlocked(t *testing.T) {
	repo := diaryRepo.NewMemoryDiaryRepo("bean", diaryRepo.BeanSeed, 3)
	svc := &diary.DefaultDiaryService{Repo: repo, Catalog: models.DefaultWindowCatalog()}
	date := repo.Horizon()[0]

	// Bean's 10:00-12:00 is fixed office work every day.
	result, err := svc.CheckWindow(date, window(t, "10:00-12:00"))
	if err != nil {
		t.Fatalf("check window: %v", err)
	}
	if result.Available {
		t.Fatal("expected fixed work block")
	}
	if result.Suggestion == "" {
		t.Fatal("expected an alternative-slot suggestion")
	}

	if _, err := svc.CheckWindow("1999-01-01", window(t, "10:00-12:00")); !errors.Is(err, diaryRepo.ErrDateOutOfHorizon) {
		t.Fatalf("expected ErrDateOutOfHorizon, got %v", err)
	}
}

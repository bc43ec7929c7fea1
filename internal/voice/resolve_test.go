package voice

import (
	"testing"

	"medication-reminder/internal/model"
)

func TestResolve(t *testing.T) {
	meds := []model.Medication{
		{ID: "1", Name: "Aspirin"},
		{ID: "2", Name: "Aspirin Extra"},
		{ID: "3", Name: "Metformin"},
	}

	t.Run("first match wins on ties", func(t *testing.T) {
		res, med := Resolve("aspirin", meds)
		if res != ResolutionFound {
			t.Fatalf("resolution = %v", res)
		}
		if med.ID != "1" {
			t.Errorf("expected first-in-list id 1, got %s", med.ID)
		}
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		res, med := Resolve("metfor", meds)
		if res != ResolutionFound || med.ID != "3" {
			t.Errorf("resolution = %v, med = %v", res, med)
		}
	})

	t.Run("mixed-case fragment", func(t *testing.T) {
		res, med := Resolve("Aspirin", meds)
		if res != ResolutionFound || med.ID != "1" {
			t.Errorf("resolution = %v, med = %v", res, med)
		}
	})

	t.Run("no match", func(t *testing.T) {
		res, med := Resolve("ibuprofen", meds)
		if res != ResolutionNotFound {
			t.Errorf("resolution = %v", res)
		}
		if med != nil {
			t.Errorf("expected nil medication, got %v", med)
		}
	})

	t.Run("empty fragment", func(t *testing.T) {
		res, _ := Resolve("   ", meds)
		if res != ResolutionEmptyFragment {
			t.Errorf("resolution = %v", res)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		res, _ := Resolve("aspirin", nil)
		if res != ResolutionNotFound {
			t.Errorf("resolution = %v", res)
		}
	})
}

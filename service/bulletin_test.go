package service

import (
	"fmt"
	"reflect"
	"testing"

	"noticeboard-backend/models"
)

func TestDeriveBulletin_FiltersAndCaps(t *testing.T) {
	var notices []models.Notice
	for i := 0; i < 7; i++ {
		notices = append(notices, models.Notice{Title: fmt.Sprintf("urgent-%d", i), Priority: 1})
	}
	notices = append(notices, models.Notice{Title: "routine", Priority: 3})

	got := DeriveBulletin(notices)
	want := []string{"urgent-0", "urgent-1", "urgent-2", "urgent-3", "urgent-4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeriveBulletin() = %v, want %v", got, want)
	}
}

func TestDeriveBulletin_KeepsRepositoryOrder(t *testing.T) {
	notices := []models.Notice{
		{Title: "first", Priority: 1},
		{Title: "skipped", Priority: 2},
		{Title: "second", Priority: 1},
	}

	got := DeriveBulletin(notices)
	want := []string{"first", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeriveBulletin() = %v, want %v", got, want)
	}
}

func TestDeriveBulletin_Fallback(t *testing.T) {
	tests := []struct {
		name    string
		notices []models.Notice
	}{
		{"nil input", nil},
		{"no priority-1 notices", []models.Notice{{Title: "routine", Priority: 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveBulletin(tt.notices)
			if len(got) == 0 {
				t.Fatal("DeriveBulletin() returned empty fallback")
			}
			if !reflect.DeepEqual(got, fallbackBulletin) {
				t.Errorf("DeriveBulletin() = %v, want static fallback %v", got, fallbackBulletin)
			}
		})
	}
}

func TestDeriveBulletin_FallbackIsACopy(t *testing.T) {
	got := DeriveBulletin(nil)
	got[0] = "mutated"
	if fallbackBulletin[0] == "mutated" {
		t.Error("DeriveBulletin() fallback shares backing array with the static list")
	}
}

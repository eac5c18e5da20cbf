package domain_test

import (
	"errors"
	"testing"

	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
)

func TestNormalizeIntake_TrimsFields(t *testing.T) {
	rec, err := domain.NormalizeIntake("  Aria Lumen ", " 2004-09-12", "18:45 ", " Portland, USA ", " align my art with my purpose ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Name != "Aria Lumen" {
		t.Errorf("name not trimmed: %q", rec.Name)
	}
	if rec.DOB != "2004-09-12" {
		t.Errorf("dob not trimmed: %q", rec.DOB)
	}
	if rec.Location != "Portland, USA" {
		t.Errorf("location not trimmed: %q", rec.Location)
	}
}

func TestNormalizeIntake_TimeDefault(t *testing.T) {
	rec, err := domain.NormalizeIntake("Aria", "2004-09-12", "", "Portland", "clarity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Time != domain.DefaultBirthTime {
		t.Errorf("expected default time %q, got %q", domain.DefaultBirthTime, rec.Time)
	}

	rec, err = domain.NormalizeIntake("Aria", "2004-09-12", "   ", "Portland", "clarity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Time != domain.DefaultBirthTime {
		t.Errorf("blank time should default, got %q", rec.Time)
	}
}

func TestNormalizeIntake_EmptyRequiredFields(t *testing.T) {
	cases := []struct {
		label     string
		name      string
		dob       string
		tm        string
		location  string
		intention string
	}{
		{"empty name", "", "2004-09-12", "18:45", "Portland", "clarity"},
		{"empty dob", "Aria", "", "18:45", "Portland", "clarity"},
		{"empty location", "Aria", "2004-09-12", "18:45", "", "clarity"},
		{"empty intention", "Aria", "2004-09-12", "18:45", "Portland", ""},
		{"whitespace name", "   ", "2004-09-12", "18:45", "Portland", "clarity"},
	}

	for _, tc := range cases {
		_, err := domain.NormalizeIntake(tc.name, tc.dob, tc.tm, tc.location, tc.intention)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", tc.label, err)
		}
	}
}

func TestNormalizeIntake_InvalidUTF8(t *testing.T) {
	_, err := domain.NormalizeIntake("Aria\xff", "2004-09-12", "18:45", "Portland", "clarity")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for invalid UTF-8, got %v", err)
	}
}

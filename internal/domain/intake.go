package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultBirthTime is substituted when the intake form leaves the birth time
// blank. It is the only field that may be defaulted; every other field must
// survive trimming non-empty.
const DefaultBirthTime = "00:00"

// intakeSeparator joins the five fields into the canonical byte string. A
// pipe is not expected inside normal intake text, so field boundaries stay
// unambiguous under hashing.
const intakeSeparator = "|"

// IntakeRecord holds the five normalized client fields. Immutable once
// produced by NormalizeIntake.
type IntakeRecord struct {
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Intention string `json:"intention"`
}

// NormalizeIntake trims every field, applies the birth-time default, and
// validates that the remaining fields are non-empty valid UTF-8. Whitespace
// is the only thing normalization removes; character case is preserved so
// that any visible difference in input yields a different digest.
func NormalizeIntake(name, dob, tm, location, intention string) (IntakeRecord, error) {
	rec := IntakeRecord{
		Name:      strings.TrimSpace(name),
		DOB:       strings.TrimSpace(dob),
		Time:      strings.TrimSpace(tm),
		Location:  strings.TrimSpace(location),
		Intention: strings.TrimSpace(intention),
	}
	if rec.Time == "" {
		rec.Time = DefaultBirthTime
	}

	for _, f := range []struct {
		field, value string
	}{
		{"name", rec.Name},
		{"dob", rec.DOB},
		{"location", rec.Location},
		{"intention", rec.Intention},
	} {
		if f.value == "" {
			return IntakeRecord{}, fmt.Errorf("%w: %s must not be empty", ErrValidation, f.field)
		}
	}

	for _, f := range []struct {
		field, value string
	}{
		{"name", rec.Name},
		{"dob", rec.DOB},
		{"time", rec.Time},
		{"location", rec.Location},
		{"intention", rec.Intention},
	} {
		if !utf8.ValidString(f.value) {
			return IntakeRecord{}, fmt.Errorf("%w: %s is not valid UTF-8", ErrValidation, f.field)
		}
	}

	return rec, nil
}

// canonicalBytes renders the record as the exact byte string fed to the
// digest: five fields in fixed order, pipe-separated, UTF-8.
func (r IntakeRecord) canonicalBytes() []byte {
	return []byte(strings.Join([]string{r.Name, r.DOB, r.Time, r.Location, r.Intention}, intakeSeparator))
}

package types

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is an ISO YYYY-MM-DD calendar date with no time-of-day or timezone
// component — the pipeline never simulates time, it only measures whole-day
// offsets between two dates (spec.md §4.4).
type Date struct {
	t time.Time
}

// ParseDate parses a YYYY-MM-DD string strictly; any other layout is a
// validation failure (spec.md §4.1).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format(dateLayout) }

// DaysSince returns the whole number of days elapsed from since to d.
func (d Date) DaysSince(since Date) int {
	return int(d.t.Sub(since.t).Hours() / 24)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

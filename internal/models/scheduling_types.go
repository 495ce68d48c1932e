package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// DayOfWeek represents days of the week. The scheduling core only iterates
// mon..sat (see SchedulingDays below); Sunday is kept on the type for
// institutions that record Sunday availability/blackout windows.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "SUNDAY"
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
)

// SchedulingDays is the fixed iteration order used by every generator.
var SchedulingDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Interval is a "HH:MM"-precision half-open time window on a single day.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayIntervals maps a day to the list of windows declared for it.
type DayIntervals map[DayOfWeek][]Interval

// AvailabilityMap backs the `availability` jsonb columns on StudentGroup,
// Classroom, and Teacher. Plain json + custom Scan/Value rather than
// datatypes.JSON, so the scheduling code works with typed intervals.
type AvailabilityMap DayIntervals

// Scan implements sql.Scanner.
func (m *AvailabilityMap) Scan(value interface{}) error {
	return scanJSONB(value, m)
}

// Value implements driver.Valuer.
func (m AvailabilityMap) Value() (driver.Value, error) {
	return valueJSONB(DayIntervals(m))
}

// BlackoutMap backs the `blackout_periods` jsonb columns. Same shape as
// AvailabilityMap, kept distinct so the two invariants (unconstrained when
// absent vs. exclusionary when present) are never confused at the type
// level.
type BlackoutMap DayIntervals

// Scan implements sql.Scanner.
func (m *BlackoutMap) Scan(value interface{}) error {
	return scanJSONB(value, m)
}

// Value implements driver.Valuer.
func (m BlackoutMap) Value() (driver.Value, error) {
	return valueJSONB(DayIntervals(m))
}

func scanJSONB(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("models: jsonb column is not []byte or string")
		}
	}
	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}

func valueJSONB(m DayIntervals) (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

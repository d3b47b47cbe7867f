package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire and storage layout of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day. It is held as midnight UTC
// so two dates compare equal whenever their year, month and day match.
type Date struct {
	time.Time
}

// DateOf returns the calendar day of t as seen in t's own location.
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// MarshalJSON writes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD" and RFC 3339 timestamps.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	if parsed, err := ParseDate(s); err == nil {
		*d = parsed
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	*d = DateOf(t)
	return nil
}

// Scan implements the Scanner interface for database deserialization
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return errors.New("type assertion to time.Time failed")
	}
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(DateLayout) {
		if parsed, err := ParseDate(s[:len(DateLayout)]); err == nil {
			*d = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid stored date %q", s)
}

// Value implements the driver Valuer interface for database serialization
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

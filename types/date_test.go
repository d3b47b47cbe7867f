package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateOf_KeepsCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2026, 3, 10, 23, 30, 0, 0, loc)

	d := DateOf(late)
	if d.String() != "2026-03-10" {
		t.Fatalf("DateOf = %s, want 2026-03-10", d)
	}
	if d.Location() != time.UTC || d.Hour() != 0 {
		t.Errorf("expected midnight UTC, got %s", d.Time)
	}
}

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"2026-03-10"`, "2026-03-10"},
		{`"2026-03-10T22:00:00Z"`, "2026-03-10"},
		{`"2026-03-10T01:00:00+09:00"`, "2026-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			out, err := json.Marshal(d)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(out) != `"`+tt.want+`"` {
				t.Errorf("marshal = %s, want %q", out, tt.want)
			}
		})
	}

	var d Date
	if err := json.Unmarshal([]byte(`"10/03/2026"`), &d); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if out, _ := json.Marshal(Date{}); string(out) != "null" {
		t.Errorf("zero date = %s, want null", out)
	}
}

func TestDate_Scan(t *testing.T) {
	want := "2026-03-10"
	for _, value := range []interface{}{
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		"2026-03-10",
		"2026-03-10 00:00:00+00:00",
		[]byte("2026-03-10T00:00:00Z"),
	} {
		var d Date
		if err := d.Scan(value); err != nil {
			t.Fatalf("Scan(%v): %v", value, err)
		}
		if d.String() != want {
			t.Errorf("Scan(%v) = %s, want %s", value, d, want)
		}
	}

	var d Date
	if err := d.Scan(42); err == nil {
		t.Error("expected error for int")
	}
	if err := d.Scan("03/10"); err == nil {
		t.Error("expected error for short string")
	}
}

func TestDate_Value(t *testing.T) {
	v, err := Date{}.Value()
	if err != nil || v != nil {
		t.Errorf("zero Value = %v, %v", v, err)
	}

	d, _ := ParseDate("2026-03-10")
	v, err = d.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if tm, ok := v.(time.Time); !ok || !tm.Equal(d.Time) {
		t.Errorf("Value = %v", v)
	}
}

func TestDate_Compare(t *testing.T) {
	a, _ := ParseDate("2026-03-09")
	b := DateOf(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	if !a.Before(b) || b.Before(a) {
		t.Error("expected 2026-03-09 before 2026-03-10")
	}
	if !b.Equal(DateOf(time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC))) {
		t.Error("same calendar day should be equal")
	}
}

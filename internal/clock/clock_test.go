package clock

import (
	"testing"
	"time"
)

func TestManualAdvance(t *testing.T) {
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	c := NewManual(start)

	if !c.Now().Equal(start) {
		t.Errorf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(90 * time.Second)
	expected := start.Add(90 * time.Second)
	if !c.Now().Equal(expected) {
		t.Errorf("Now() after Advance = %v, expected %v", c.Now(), expected)
	}
}

func TestManualSet(t *testing.T) {
	c := NewManual(time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local))

	target := time.Date(2026, time.March, 11, 0, 2, 0, 0, time.Local)
	c.Set(target)

	if !c.Now().Equal(target) {
		t.Errorf("Now() after Set = %v, expected %v", c.Now(), target)
	}
}

func TestSystemNow(t *testing.T) {
	c := NewSystem(nil)

	before := time.Now()
	got := c.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("System.Now() = %v, expected between %v and %v", got, before, after)
	}
}

func TestSystemNowWithLocation(t *testing.T) {
	loc := time.UTC
	c := NewSystem(loc)

	if got := c.Now().Location(); got != loc {
		t.Errorf("System.Now().Location() = %v, expected %v", got, loc)
	}
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancellable(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingPending, true},
		{BookingConfirmed, true},
		{BookingCancelled, false},
		{BookingCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.Cancellable())
		})
	}
}

func TestInWindow(t *testing.T) {
	today := NewDate(2024, time.June, 15)

	past := Booking{ID: "A", CheckIn: NewDate(2024, time.June, 1), CheckOut: NewDate(2024, time.June, 5)}
	current := Booking{ID: "B", CheckIn: NewDate(2024, time.June, 14), CheckOut: NewDate(2024, time.June, 18)}
	upcoming := Booking{ID: "C", CheckIn: NewDate(2024, time.June, 20), CheckOut: NewDate(2024, time.June, 22)}
	all := []Booking{past, current, upcoming}

	tests := []struct {
		name   string
		window BookingWindow
		want   []string
	}{
		{"past returns only A", WindowPast, []string{"A"}},
		{"current returns only B", WindowCurrent, []string{"B"}},
		{"upcoming returns only C", WindowUpcoming, []string{"C"}},
		{"all returns everything", WindowAll, []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, b := range all {
				if b.InWindow(tt.window, today) {
					got = append(got, b.ID)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInWindowIgnoresStatus(t *testing.T) {
	today := NewDate(2024, time.June, 15)
	cancelled := Booking{
		ID:       "X",
		Status:   BookingCancelled,
		CheckIn:  NewDate(2024, time.June, 20),
		CheckOut: NewDate(2024, time.June, 22),
	}

	// A cancelled booking stays in its date bucket and under all.
	assert.True(t, cancelled.InWindow(WindowUpcoming, today))
	assert.True(t, cancelled.InWindow(WindowAll, today))
	assert.False(t, cancelled.InWindow(WindowPast, today))
}

func TestBoundaryDaysAreCurrent(t *testing.T) {
	today := NewDate(2024, time.June, 15)

	checkInToday := Booking{CheckIn: today, CheckOut: today.AddDays(3)}
	checkOutToday := Booking{CheckIn: today.AddDays(-3), CheckOut: today}

	assert.True(t, checkInToday.InWindow(WindowCurrent, today))
	assert.True(t, checkOutToday.InWindow(WindowCurrent, today))
	assert.False(t, checkInToday.InWindow(WindowUpcoming, today))
	assert.False(t, checkOutToday.InWindow(WindowPast, today))
}

func TestParseBookingWindow(t *testing.T) {
	w, ok := ParseBookingWindow("")
	assert.True(t, ok)
	assert.Equal(t, WindowAll, w)

	_, ok = ParseBookingWindow("yesterday")
	assert.False(t, ok)
}

package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition_Table(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		StatusUpcoming:   {StatusCheckedIn, StatusCancelled, StatusActive, StatusConfirmed},
		StatusConfirmed:  {StatusCheckedIn, StatusCancelled, StatusActive, StatusUpcoming},
		StatusActive:     {StatusCheckedIn, StatusCancelled, StatusConfirmed, StatusUpcoming},
		StatusCheckedIn:  {StatusCheckedOut},
		StatusCheckedOut: {},
		StatusCancelled:  {StatusConfirmed, StatusUpcoming, StatusActive},
	}

	for _, from := range AllBookingStatuses {
		for _, to := range AllBookingStatuses {
			err := ValidateTransition(from, to)

			want := from == to
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}

			if want {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
				assert.ErrorIs(t, err, ErrValidation)
			}
		}
	}
}

func TestValidateTransition_Messages(t *testing.T) {
	detail, ok := Detail(ValidateTransition(StatusCheckedIn, StatusCancelled))
	require.True(t, ok)
	assert.Equal(t, "Cannot change status from 'checked_in'. Only check-out is allowed.", detail)

	detail, ok = Detail(ValidateTransition(StatusCheckedOut, StatusUpcoming))
	require.True(t, ok)
	assert.Equal(t, "Cannot modify a checked-out booking.", detail)

	detail, ok = Detail(ValidateTransition(StatusCancelled, StatusCheckedIn))
	require.True(t, ok)
	assert.Equal(t, "Cannot change status from 'cancelled' to 'checked_in'.", detail)
}

func TestValidateCheckIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateCheckIn(now, now))
	assert.NoError(t, ValidateCheckIn(now.Add(-time.Hour), now))
	assert.ErrorIs(t, ValidateCheckIn(now.Add(time.Minute), now), ErrInvalidTransition)
}

func TestFindOverlap(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 1, d, 14, 0, 0, 0, time.UTC) }

	existing := []*Booking{
		{ID: 1, StartDate: day(5), EndDate: day(8), Status: StatusConfirmed},
		{ID: 2, StartDate: day(10), EndDate: day(12), Status: StatusCancelled},
		{ID: 3, StartDate: day(14), EndDate: day(16), Status: StatusCheckedOut},
		{ID: 4, StartDate: day(20), EndDate: day(22), Status: StatusActive},
	}

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		excludeID int64
		wantID    int64
	}{
		{name: "inside confirmed", start: day(6), end: day(7), wantID: 1},
		{name: "covering confirmed", start: day(4), end: day(9), wantID: 1},
		{name: "touching end", start: day(8), end: day(9)},
		{name: "touching start", start: day(3), end: day(5)},
		{name: "over cancelled", start: day(10), end: day(12)},
		{name: "over checked out", start: day(14), end: day(15)},
		{name: "active blocks", start: day(21), end: day(23), wantID: 4},
		{name: "self excluded", start: day(6), end: day(7), excludeID: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindOverlap(existing, tt.start, tt.end, tt.excludeID)
			if tt.wantID == 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestValidateDates(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateDates(start, start.Add(time.Hour)))
	assert.ErrorIs(t, ValidateDates(start, start), ErrInvalidBookingDates)
	assert.ErrorIs(t, ValidateDates(time.Time{}, start), ErrInvalidBookingDates)
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("checked_in")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, s)

	_, err = ParseBookingStatus("paid")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrValidation, KindOf(ErrInvalidRefund))
	assert.Equal(t, ErrNotFound, KindOf(WithDetail(ErrTaskNotFound, "task %d", 1)))
	assert.Nil(t, KindOf(errors.New("boom")))
}

package occupancy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/pkg/logger"
)

type bookingRepoMock struct{ mock.Mock }

func (m *bookingRepoMock) GetBlockingByApartment(ctx context.Context, apartmentID int64, start, end time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, apartmentID, start, end)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

func (m *bookingRepoMock) HasCheckedIn(ctx context.Context, apartmentID int64) (bool, error) {
	args := m.Called(ctx, apartmentID)
	return args.Bool(0), args.Error(1)
}

type apartmentRepoMock struct{ mock.Mock }

func (m *apartmentRepoMock) SetInService(ctx context.Context, id int64, inService bool) error {
	return m.Called(ctx, id, inService).Error(0)
}

var (
	jan10 = time.Date(2025, 1, 10, 14, 0, 0, 0, time.UTC)
	jan12 = time.Date(2025, 1, 12, 11, 0, 0, 0, time.UTC)
	jan15 = time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC)
)

func TestCheckApartments_ConflictNamesApartment(t *testing.T) {
	ctx := context.Background()
	bookings := &bookingRepoMock{}
	svc := NewService(bookings, &apartmentRepoMock{}, logger.NewNop())

	apartments := []*domain.Apartment{{ID: 1, Number: 101}, {ID: 2, Number: 102}}

	bookings.On("GetBlockingByApartment", ctx, int64(1), jan10, jan15).Return([]*domain.Booking{}, nil)
	bookings.On("GetBlockingByApartment", ctx, int64(2), jan10, jan15).Return([]*domain.Booking{
		{ID: 9, StartDate: jan12, EndDate: jan15, Status: domain.StatusConfirmed},
	}, nil)

	err := svc.CheckApartments(ctx, apartments, jan10, jan15, 0)

	require.ErrorIs(t, err, domain.ErrBookingOverlap)
	detail, ok := domain.Detail(err)
	require.True(t, ok)
	assert.Contains(t, detail, "Apartment 102")
	assert.Contains(t, detail, "2025-01-12T11:00:00Z")
	bookings.AssertExpectations(t)
}

func TestCheckApartments_ExcludesSelf(t *testing.T) {
	ctx := context.Background()
	bookings := &bookingRepoMock{}
	svc := NewService(bookings, &apartmentRepoMock{}, logger.NewNop())

	bookings.On("GetBlockingByApartment", ctx, int64(1), jan10, jan15).Return([]*domain.Booking{
		{ID: 3, StartDate: jan10, EndDate: jan12, Status: domain.StatusUpcoming},
	}, nil)

	err := svc.CheckApartments(ctx, []*domain.Apartment{{ID: 1, Number: 101}}, jan10, jan15, 3)
	assert.NoError(t, err)

	has, err := svc.HasOverlap(ctx, 1, jan10, jan15, 0)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestCheckApartments_RepositoryError(t *testing.T) {
	ctx := context.Background()
	bookings := &bookingRepoMock{}
	svc := NewService(bookings, &apartmentRepoMock{}, logger.NewNop())

	bookings.On("GetBlockingByApartment", ctx, int64(1), jan10, jan15).Return(nil, errors.New("db down"))

	err := svc.CheckApartments(ctx, []*domain.Apartment{{ID: 1}}, jan10, jan15, 0)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestRecompute_DeduplicatesAndSetsFlag(t *testing.T) {
	ctx := context.Background()
	bookings := &bookingRepoMock{}
	apartments := &apartmentRepoMock{}
	svc := NewService(bookings, apartments, logger.NewNop())

	bookings.On("HasCheckedIn", ctx, int64(1)).Return(true, nil).Once()
	bookings.On("HasCheckedIn", ctx, int64(2)).Return(false, nil).Once()
	apartments.On("SetInService", ctx, int64(1), true).Return(nil).Once()
	apartments.On("SetInService", ctx, int64(2), false).Return(nil).Once()

	require.NoError(t, svc.Recompute(ctx, []int64{2, 1, 2}))

	bookings.AssertExpectations(t)
	apartments.AssertExpectations(t)
}

package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PropertyService/pkg/logger"
	"github.com/m04kA/SMC-PropertyService/pkg/ptr"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) SetApartments(ctx context.Context, bookingID int64, ids []int64) error {
	return m.Called(ctx, bookingID, ids).Error(0)
}

type mockApartmentRepo struct{ mock.Mock }

func (m *mockApartmentRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Apartment, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*domain.Apartment), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockOccupancy struct{ mock.Mock }

func (m *mockOccupancy) CheckApartments(ctx context.Context, apts []*domain.Apartment, start, end time.Time, exclude int64) error {
	return m.Called(ctx, apts, start, end, exclude).Error(0)
}

func (m *mockOccupancy) Recompute(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	now   = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	admin = &domain.User{ID: 1, Role: domain.RoleAdmin}
)

type fixture struct {
	bookings   *mockBookingRepo
	apartments *mockApartmentRepo
	occupancy  *mockOccupancy
	uc         *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings:   &mockBookingRepo{},
		apartments: &mockApartmentRepo{},
		occupancy:  &mockOccupancy{},
	}
	users := &mockUserRepo{}
	users.On("GetByID", mock.Anything, int64(1)).Return(admin, nil)
	f.uc = NewUseCase(f.bookings, f.apartments, users, f.occupancy, inlineTx{}, nil, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func apartment(id int64, number int, inService bool) *domain.Apartment {
	price := decimal.NewFromInt(100)
	return &domain.Apartment{ID: id, PropertyID: 10, Number: number, Price: &price, IsActive: true, InService: inService}
}

func booking(status domain.BookingStatus, start time.Time, aptIDs ...int64) *domain.Booking {
	return &domain.Booking{ID: 5, Status: status, StartDate: start, EndDate: start.Add(48 * time.Hour), ApartmentIDs: aptIDs}
}

func TestExecute_CheckInStampsActorAndRecomputes(t *testing.T) {
	f := newFixture()
	start := now.Add(-time.Hour)
	apts := []*domain.Apartment{apartment(1, 101, false)}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(domain.StatusConfirmed, start, 1), nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1}).Return(apts, nil)
	f.occupancy.On("CheckApartments", mock.Anything, apts, start, start.Add(48*time.Hour), int64(5)).Return(nil)
	f.bookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusCheckedIn && b.CheckInBy != nil && *b.CheckInBy == 1
	})).Return(nil)
	f.occupancy.On("Recompute", mock.Anything, []int64{1}).Return(nil)

	status := domain.StatusCheckedIn
	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: 1, BookingID: 5, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, resp.Booking.Booking.Status)
	assert.Equal(t, "200.00", resp.Booking.TotalPrice.StringFixed(2))
	f.bookings.AssertNotCalled(t, "SetApartments", mock.Anything, mock.Anything, mock.Anything)
	f.occupancy.AssertExpectations(t)
}

func TestExecute_CheckInBeforeStart(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(domain.StatusUpcoming, now.Add(time.Hour), 1), nil)

	status := domain.StatusCheckedIn
	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 1, BookingID: 5, Status: &status})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExecute_TransitionMessages(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.BookingStatus
		to     domain.BookingStatus
		detail string
	}{
		{"checked in", domain.StatusCheckedIn, domain.StatusCancelled, "Cannot change status from 'checked_in'. Only check-out is allowed."},
		{"checked out", domain.StatusCheckedOut, domain.StatusUpcoming, "Cannot modify a checked-out booking."},
		{"cancelled", domain.StatusCancelled, domain.StatusCheckedIn, "Cannot change status from 'cancelled' to 'checked_in'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(tt.from, now.Add(-time.Hour), 1), nil)

			to := tt.to
			_, err := f.uc.Execute(context.Background(), &Request{ActorID: 1, BookingID: 5, Status: &to})

			require.ErrorIs(t, err, domain.ErrValidation)
			detail, ok := domain.Detail(err)
			require.True(t, ok)
			assert.Equal(t, tt.detail, detail)
		})
	}
}

func TestExecute_CheckedOutDatesAreFrozen(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(domain.StatusCheckedOut, now, 1), nil)

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 1, BookingID: 5, EndDate: ptr.Ptr(now.Add(96 * time.Hour))})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestExecute_ApartmentsLockedWhileCheckedIn(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(domain.StatusCheckedIn, now.Add(-time.Hour), 1), nil)

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 1, BookingID: 5, ApartmentIDs: []int64{2}})

	assert.ErrorIs(t, err, ErrApartmentsLocked)
}

func TestExecute_AddedApartmentInService(t *testing.T) {
	f := newFixture()
	start := now.Add(24 * time.Hour)
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(domain.StatusUpcoming, start, 1), nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1, 2}).
		Return([]*domain.Apartment{apartment(1, 101, false), apartment(2, 102, true)}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 1, BookingID: 5, ApartmentIDs: []int64{1, 2}})

	require.ErrorIs(t, err, ErrApartmentUnavailable)
	detail, _ := domain.Detail(err)
	assert.Equal(t, "Apartment 102 is currently occupied", detail)
}

func TestExecute_SwapApartmentsRecomputesBoth(t *testing.T) {
	f := newFixture()
	start := now.Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)
	old := apartment(1, 101, false)
	next := apartment(2, 102, false)
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(domain.StatusUpcoming, start, 1), nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1, 2}).Return([]*domain.Apartment{old, next}, nil)
	f.occupancy.On("CheckApartments", mock.Anything, []*domain.Apartment{next}, start, end, int64(5)).Return(nil)
	f.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.bookings.On("SetApartments", mock.Anything, int64(5), []int64{2}).Return(nil)
	f.occupancy.On("Recompute", mock.Anything, []int64{1, 2}).Return(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: 1, BookingID: 5, ApartmentIDs: []int64{2}})

	require.NoError(t, err)
	assert.Equal(t, []int64{2}, resp.Booking.Booking.ApartmentIDs)
	f.bookings.AssertExpectations(t)
	f.occupancy.AssertExpectations(t)
}

func TestExecute_CancelSkipsOverlapCheck(t *testing.T) {
	f := newFixture()
	start := now.Add(24 * time.Hour)
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(domain.StatusConfirmed, start, 1), nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1}).Return([]*domain.Apartment{apartment(1, 101, false)}, nil)
	f.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.occupancy.On("Recompute", mock.Anything, []int64{1}).Return(nil)

	status := domain.StatusCancelled
	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 1, BookingID: 5, Status: &status})

	require.NoError(t, err)
	f.occupancy.AssertNotCalled(t, "CheckApartments", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_OverlapOnDateChange(t *testing.T) {
	f := newFixture()
	start := now.Add(24 * time.Hour)
	newEnd := start.Add(120 * time.Hour)
	apts := []*domain.Apartment{apartment(1, 101, false)}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(booking(domain.StatusConfirmed, start, 1), nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1}).Return(apts, nil)
	f.occupancy.On("CheckApartments", mock.Anything, apts, start, newEnd, int64(5)).Return(domain.ErrBookingOverlap)

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 1, BookingID: 5, EndDate: &newEnd})

	assert.ErrorIs(t, err, domain.ErrBookingOverlap)
	f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 1, BookingID: 5})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package create_booking

import (
	"context"
	"errors"
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

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, b)
	if created, ok := args.Get(0).(*domain.Booking); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
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
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOccupancy struct{ mock.Mock }

func (m *mockOccupancy) CheckApartments(ctx context.Context, apts []*domain.Apartment, start, end time.Time, exclude int64) error {
	return m.Called(ctx, apts, start, end, exclude).Error(0)
}

func (m *mockOccupancy) Recompute(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

type inlineTx struct{ calls int }

func (t *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	bookings   *mockBookingRepo
	apartments *mockApartmentRepo
	users      *mockUserRepo
	occupancy  *mockOccupancy
	tx         *inlineTx
	uc         *UseCase
}

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	f := &fixture{
		bookings:   &mockBookingRepo{},
		apartments: &mockApartmentRepo{},
		users:      &mockUserRepo{},
		occupancy:  &mockOccupancy{},
		tx:         &inlineTx{},
	}
	f.uc = NewUseCase(f.bookings, f.apartments, f.users, f.occupancy, f.tx, nil, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func apartment(id, propertyID int64, number int, price string) *domain.Apartment {
	p := decimal.RequireFromString(price)
	return &domain.Apartment{ID: id, PropertyID: propertyID, Number: number, Price: &p, IsActive: true}
}

func receptionist(propertyIDs ...int64) *domain.User {
	return &domain.User{ID: 7, Role: domain.RoleReceptionist, PropertyIDs: propertyIDs}
}

func TestExecute_CreatesUpcomingBooking(t *testing.T) {
	f := newFixture()
	start := now.Add(48 * time.Hour)
	end := start.Add(72 * time.Hour)
	apts := []*domain.Apartment{apartment(1, 10, 101, "100.50"), apartment(2, 10, 102, "50")}

	f.users.On("GetByID", mock.Anything, int64(7)).Return(receptionist(10), nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(apts, nil)
	f.occupancy.On("CheckApartments", mock.Anything, apts, start, end, int64(0)).Return(nil)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusUpcoming && *b.AddedBy == 7 && b.CheckInBy == nil
	})).Return(&domain.Booking{ID: 55, StartDate: start, EndDate: end, Status: domain.StatusUpcoming}, nil)
	f.bookings.On("SetApartments", mock.Anything, int64(55), []int64{1, 2}).Return(nil)
	f.occupancy.On("Recompute", mock.Anything, []int64{1, 2}).Return(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		ActorID:      7,
		ApartmentIDs: []int64{1, 2, 1},
		StartDate:    start,
		EndDate:      end,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(55), resp.Booking.Booking.ID)
	require.NotNil(t, resp.Booking.DurationDays)
	assert.Equal(t, 3, *resp.Booking.DurationDays)
	require.NotNil(t, resp.Booking.TotalPrice)
	assert.Equal(t, "451.50", resp.Booking.TotalPrice.StringFixed(2))
	assert.Equal(t, 1, f.tx.calls)
	f.bookings.AssertExpectations(t)
	f.occupancy.AssertExpectations(t)
}

func TestExecute_CheckedInStampsCheckInBy(t *testing.T) {
	f := newFixture()
	start := now.Add(-time.Hour)
	end := now.Add(24 * time.Hour)
	apts := []*domain.Apartment{apartment(1, 10, 101, "80")}
	status := domain.StatusCheckedIn

	f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleAdmin}, nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1}).Return(apts, nil)
	f.occupancy.On("CheckApartments", mock.Anything, apts, start, end, int64(0)).Return(nil)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.CheckInBy != nil && *b.CheckInBy == 7
	})).Return(&domain.Booking{ID: 1, StartDate: start, EndDate: end, Status: status}, nil)
	f.bookings.On("SetApartments", mock.Anything, int64(1), []int64{1}).Return(nil)
	f.occupancy.On("Recompute", mock.Anything, []int64{1}).Return(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		ActorID: 7, ApartmentIDs: []int64{1}, StartDate: start, EndDate: end, Status: &status,
	})

	require.NoError(t, err)
	f.bookings.AssertExpectations(t)
}

func TestExecute_StatusRules(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
		start  time.Time
		detail string
	}{
		{"check in in the future", domain.StatusCheckedIn, now.Add(time.Hour), "You cannot check in when start date is in the future"},
		{"upcoming in the past", domain.StatusUpcoming, now.Add(-time.Hour), "Upcoming booking cannot start in the past"},
		{"checked out is not initial", domain.StatusCheckedOut, now.Add(time.Hour), "booking cannot be created with status 'checked_out'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			status := tt.status
			_, err := f.uc.Execute(context.Background(), &Request{
				ActorID: 7, ApartmentIDs: []int64{1}, StartDate: tt.start, EndDate: tt.start.Add(24 * time.Hour), Status: &status,
			})

			require.ErrorIs(t, err, ErrInvalidStatus)
			assert.ErrorIs(t, err, domain.ErrValidation)
			detail, ok := domain.Detail(err)
			require.True(t, ok)
			assert.Equal(t, tt.detail, detail)
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestExecute_InvalidDates(t *testing.T) {
	f := newFixture()
	start := now.Add(48 * time.Hour)

	_, err := f.uc.Execute(context.Background(), &Request{
		ActorID: 7, ApartmentIDs: []int64{1}, StartDate: start, EndDate: start,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidBookingDates)
}

func TestExecute_ApartmentChecks(t *testing.T) {
	inService := apartment(1, 10, 101, "80")
	inService.InService = true
	inactive := apartment(1, 10, 101, "80")
	inactive.IsActive = false

	tests := []struct {
		name    string
		found   []*domain.Apartment
		wantErr error
	}{
		{"missing", []*domain.Apartment{}, ErrApartmentNotFound},
		{"occupied", []*domain.Apartment{inService}, ErrApartmentUnavailable},
		{"inactive", []*domain.Apartment{inactive}, ErrApartmentUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			start := now.Add(48 * time.Hour)
			f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleManager}, nil)
			f.apartments.On("GetByIDs", mock.Anything, []int64{1}).Return(tt.found, nil)

			_, err := f.uc.Execute(context.Background(), &Request{
				ActorID: 7, ApartmentIDs: []int64{1}, StartDate: start, EndDate: start.Add(24 * time.Hour),
			})

			assert.ErrorIs(t, err, tt.wantErr)
			f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_ReceptionistOfOtherProperty(t *testing.T) {
	f := newFixture()
	start := now.Add(48 * time.Hour)
	f.users.On("GetByID", mock.Anything, int64(7)).Return(receptionist(99), nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1}).Return([]*domain.Apartment{apartment(1, 10, 101, "80")}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		ActorID: 7, ApartmentIDs: []int64{1}, StartDate: start, EndDate: start.Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, domain.ErrPermission)
}

func TestExecute_OverlapStopsCreation(t *testing.T) {
	f := newFixture()
	start := now.Add(48 * time.Hour)
	end := start.Add(24 * time.Hour)
	apts := []*domain.Apartment{apartment(1, 10, 101, "80")}
	overlap := domain.WithDetail(domain.ErrBookingOverlap, "Apartment 101 is already booked from a to b")

	f.users.On("GetByID", mock.Anything, int64(7)).Return(receptionist(10), nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1}).Return(apts, nil)
	f.occupancy.On("CheckApartments", mock.Anything, apts, start, end, int64(0)).Return(overlap)

	_, err := f.uc.Execute(context.Background(), &Request{
		ActorID: 7, ApartmentIDs: []int64{1}, StartDate: start, EndDate: end,
	})

	require.ErrorIs(t, err, domain.ErrBookingOverlap)
	detail, _ := domain.Detail(err)
	assert.Equal(t, "Apartment 101 is already booked from a to b", detail)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_GuestNotFound(t *testing.T) {
	f := newFixture()
	start := now.Add(48 * time.Hour)
	end := start.Add(24 * time.Hour)
	apts := []*domain.Apartment{apartment(1, 10, 101, "80")}

	f.users.On("GetByID", mock.Anything, int64(7)).Return(receptionist(10), nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1}).Return(apts, nil)
	f.occupancy.On("CheckApartments", mock.Anything, apts, start, end, int64(0)).Return(nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrGuestNotFound)

	_, err := f.uc.Execute(context.Background(), &Request{
		ActorID: 7, GuestID: ptr.Ptr(int64(3)), ApartmentIDs: []int64{1}, StartDate: start, EndDate: end,
	})

	assert.ErrorIs(t, err, ErrGuestNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_RepositoryFailureIsInternal(t *testing.T) {
	f := newFixture()
	start := now.Add(48 * time.Hour)
	f.users.On("GetByID", mock.Anything, int64(7)).Return(receptionist(10), nil)
	f.apartments.On("GetByIDs", mock.Anything, []int64{1}).Return([]*domain.Apartment(nil), errors.New("db down"))

	_, err := f.uc.Execute(context.Background(), &Request{
		ActorID: 7, ApartmentIDs: []int64{1}, StartDate: start, EndDate: start.Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, domain.KindOf(err))
}

package update_refund_status

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	refundRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/refund"
	"github.com/m04kA/SMC-PropertyService/pkg/logger"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockApartmentRepo struct{ mock.Mock }

func (m *mockApartmentRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Apartment, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*domain.Apartment), args.Error(1)
}

type mockRefundRepo struct{ mock.Mock }

func (m *mockRefundRepo) GetByID(ctx context.Context, id int64) (*domain.Refund, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*domain.Refund); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRefundRepo) UpdateStatus(ctx context.Context, r *domain.Refund) error {
	return m.Called(ctx, r).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockOccupancy struct{ mock.Mock }

func (m *mockOccupancy) Recompute(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	bookings  *mockBookingRepo
	refunds   *mockRefundRepo
	users     *mockUserRepo
	occupancy *mockOccupancy
	uc        *UseCase
}

// newFixture бронирование id=5 (2 ночи по 150, итого 300) и возврат id=9 в статусе pending
func newFixture(amount string, status domain.RefundStatus) *fixture {
	f := &fixture{
		bookings:  &mockBookingRepo{},
		refunds:   &mockRefundRepo{},
		users:     &mockUserRepo{},
		occupancy: &mockOccupancy{},
	}
	apartments := &mockApartmentRepo{}
	price := decimal.NewFromInt(150)
	start := now.Add(24 * time.Hour)

	f.refunds.On("GetByID", mock.Anything, int64(9)).Return(&domain.Refund{
		ID: 9, BookingID: 5, Amount: decimal.RequireFromString(amount), Status: status,
	}, nil)
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, Status: domain.StatusConfirmed, StartDate: start, EndDate: start.Add(48 * time.Hour), ApartmentIDs: []int64{1},
	}, nil)
	apartments.On("GetByIDs", mock.Anything, []int64{1}).
		Return([]*domain.Apartment{{ID: 1, PropertyID: 10, Number: 101, Price: &price}}, nil)

	f.uc = NewUseCase(f.bookings, apartments, f.refunds, f.users, f.occupancy, inlineTx{}, nil, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func (f *fixture) actor(role domain.Role) {
	f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: role}, nil)
}

func TestExecute_RejectStampsProcessing(t *testing.T) {
	f := newFixture("300", domain.RefundPending)
	f.actor(domain.RoleAdmin)
	f.refunds.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(r *domain.Refund) bool {
		return r.Status == domain.RefundRejected && *r.ProcessedBy == 7 && r.ProcessedAt.Equal(now)
	})).Return(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, RefundID: 9, Status: domain.RefundRejected})

	require.NoError(t, err)
	assert.False(t, resp.BookingCancelled)
	f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_ApproveFullAmountCancelsBooking(t *testing.T) {
	f := newFixture("300", domain.RefundPending)
	f.actor(domain.RoleAdmin)
	f.refunds.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil)
	f.bookings.On("UpdateStatus", mock.Anything, int64(5), domain.StatusCancelled).Return(nil)
	f.occupancy.On("Recompute", mock.Anything, []int64{1}).Return(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, RefundID: 9, Status: domain.RefundApproved})

	require.NoError(t, err)
	assert.True(t, resp.BookingCancelled)
	assert.Equal(t, domain.RefundApproved, resp.Refund.Status)
	f.occupancy.AssertExpectations(t)
}

func TestExecute_ApprovePartialAmount(t *testing.T) {
	f := newFixture("120", domain.RefundPending)
	f.actor(domain.RoleAdmin)
	f.refunds.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, RefundID: 9, Status: domain.RefundApproved})

	require.NoError(t, err)
	assert.False(t, resp.BookingCancelled)
}

func TestExecute_OnlyPendingRefundsChange(t *testing.T) {
	f := newFixture("120", domain.RefundApproved)
	f.actor(domain.RoleAdmin)

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, RefundID: 9, Status: domain.RefundRejected})

	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	f.refunds.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestExecute_ReceptionistDenied(t *testing.T) {
	f := newFixture("120", domain.RefundPending)
	f.actor(domain.RoleReceptionist)

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, RefundID: 9, Status: domain.RefundApproved})

	assert.ErrorIs(t, err, ErrAccessDenied)
	f.refunds.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestExecute_RefundNotFound(t *testing.T) {
	f := &fixture{refunds: &mockRefundRepo{}, users: &mockUserRepo{}}
	f.refunds.On("GetByID", mock.Anything, int64(9)).Return(nil, refundRepo.ErrRefundNotFound)
	f.actor(domain.RoleManager)
	f.uc = NewUseCase(&mockBookingRepo{}, &mockApartmentRepo{}, f.refunds, f.users, &mockOccupancy{}, inlineTx{}, nil, logger.NewNop())

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, RefundID: 9, Status: domain.RefundApproved})

	assert.ErrorIs(t, err, ErrRefundNotFound)
}

func TestExecute_PendingIsNotATarget(t *testing.T) {
	f := newFixture("120", domain.RefundPending)

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, RefundID: 9, Status: domain.RefundPending})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

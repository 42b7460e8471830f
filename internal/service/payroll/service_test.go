package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/property"
	"github.com/m04kA/SMC-PropertyService/internal/service/payroll/models"
	"github.com/m04kA/SMC-PropertyService/pkg/logger"
	"github.com/m04kA/SMC-PropertyService/pkg/ptr"
)

type mockTaskRepo struct{ mock.Mock }

func (m *mockTaskRepo) GetCompletedMinutesByUser(ctx context.Context, start, end time.Time, propertyID *int64) (map[int64]decimal.Decimal, error) {
	args := m.Called(ctx, start, end, propertyID)
	return args.Get(0).(map[int64]decimal.Decimal), args.Error(1)
}

type mockPayRuleRepo struct{ mock.Mock }

func (m *mockPayRuleRepo) GetByUserIDs(ctx context.Context, ids []int64) (map[int64][]*domain.PayRule, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[int64][]*domain.PayRule), args.Error(1)
}

type mockSalaryRepo struct{ mock.Mock }

func (m *mockSalaryRepo) GetOverlappingUserIDs(ctx context.Context, ids []int64, start, end time.Time) (map[int64]bool, error) {
	args := m.Called(ctx, ids, start, end)
	return args.Get(0).(map[int64]bool), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*domain.User), args.Error(1)
}

type mockPropertyRepo struct{ mock.Mock }

func (m *mockPropertyRepo) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Property); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

var (
	start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
)

func rate(payType domain.PayType, value string) *domain.PayRule {
	d := decimal.RequireFromString(value)
	return &domain.PayRule{PayType: payType, PayRate: &d}
}

type fixture struct {
	tasks      *mockTaskRepo
	rules      *mockPayRuleRepo
	salaries   *mockSalaryRepo
	users      *mockUserRepo
	properties *mockPropertyRepo
	svc        *Service
}

func newFixture() *fixture {
	f := &fixture{
		tasks:      &mockTaskRepo{},
		rules:      &mockPayRuleRepo{},
		salaries:   &mockSalaryRepo{},
		users:      &mockUserRepo{},
		properties: &mockPropertyRepo{},
	}
	f.svc = NewService(f.tasks, f.rules, f.salaries, f.users, f.properties, logger.NewNop())
	return f
}

func TestCalculate_UsersWithCompletedTasks(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetCompletedMinutesByUser", mock.Anything, start, end, (*int64)(nil)).Return(map[int64]decimal.Decimal{
		3: decimal.NewFromInt(120),
		2: decimal.NewFromInt(300),
	}, nil)
	f.users.On("GetByIDs", mock.Anything, []int64{2, 3}).Return([]*domain.User{{ID: 2}, {ID: 3}}, nil)
	f.rules.On("GetByUserIDs", mock.Anything, []int64{2, 3}).Return(map[int64][]*domain.PayRule{
		2: {rate(domain.PaySalaried, "1000"), rate(domain.PayHourly, "8")},
		3: {rate(domain.PayHourly, "6.25")},
	}, nil)
	f.salaries.On("GetOverlappingUserIDs", mock.Anything, []int64{2, 3}, start, end).Return(map[int64]bool{3: true}, nil)

	result, err := f.svc.Calculate(context.Background(), models.Period{StartDate: start, EndDate: end}, nil)

	require.NoError(t, err)
	require.Len(t, result.Lines, 2)
	assert.Nil(t, result.Property)

	assert.Equal(t, int64(2), result.Lines[0].User.ID)
	assert.Equal(t, "1040.00", result.Lines[0].Breakdown.Total.StringFixed(2))
	assert.False(t, result.Lines[0].OverlapsExisting)

	assert.Equal(t, int64(3), result.Lines[1].User.ID)
	assert.Equal(t, "12.50", result.Lines[1].Breakdown.Total.StringFixed(2))
	assert.True(t, result.Lines[1].OverlapsExisting)
}

func TestCalculate_ExplicitUsersWithoutTasks(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetCompletedMinutesByUser", mock.Anything, start, end, (*int64)(nil)).Return(map[int64]decimal.Decimal{}, nil)
	f.users.On("GetByIDs", mock.Anything, []int64{4, 9}).Return([]*domain.User{{ID: 4}}, nil)
	f.rules.On("GetByUserIDs", mock.Anything, []int64{4, 9}).Return(map[int64][]*domain.PayRule{
		4: {rate(domain.PaySalaried, "500"), rate(domain.PayHourly, "10")},
	}, nil)
	f.salaries.On("GetOverlappingUserIDs", mock.Anything, []int64{4, 9}, start, end).Return(map[int64]bool{}, nil)

	result, err := f.svc.Calculate(context.Background(), models.Period{StartDate: start, EndDate: end}, []int64{9, 4, 4})

	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, "500.00", result.Lines[0].Breakdown.Total.StringFixed(2))
}

func TestCalculate_NoCompletedTasks(t *testing.T) {
	f := newFixture()
	f.tasks.On("GetCompletedMinutesByUser", mock.Anything, start, end, (*int64)(nil)).Return(map[int64]decimal.Decimal{}, nil)

	result, err := f.svc.Calculate(context.Background(), models.Period{StartDate: start, EndDate: end}, nil)

	require.NoError(t, err)
	assert.Empty(t, result.Lines)
	f.users.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestCalculate_PropertyFilter(t *testing.T) {
	f := newFixture()
	propertyID := ptr.Ptr(int64(10))
	f.properties.On("GetByID", mock.Anything, int64(10)).Return(&domain.Property{ID: 10, Name: "Sea View"}, nil)
	f.tasks.On("GetCompletedMinutesByUser", mock.Anything, start, end, propertyID).Return(map[int64]decimal.Decimal{}, nil)

	result, err := f.svc.Calculate(context.Background(), models.Period{StartDate: start, EndDate: end, PropertyID: propertyID}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Sea View", result.Property.Name)
}

func TestCalculate_UnknownProperty(t *testing.T) {
	f := newFixture()
	f.properties.On("GetByID", mock.Anything, int64(10)).Return(nil, propertyRepo.ErrPropertyNotFound)

	_, err := f.svc.Calculate(context.Background(), models.Period{StartDate: start, EndDate: end, PropertyID: ptr.Ptr(int64(10))}, nil)

	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package schedules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-PropertyService/pkg/logger"
	"github.com/m04kA/SMC-PropertyService/pkg/ptr"
)

type mockScheduleRepo struct{ mock.Mock }

func (m *mockScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.StaffSchedule, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*domain.StaffSchedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScheduleRepo) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.StaffSchedule, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.StaffSchedule), args.Error(1)
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.User), args.Error(1)
}

func newService(role domain.Role) (*Service, *mockScheduleRepo) {
	repo := &mockScheduleRepo{}
	users := &mockUserRepo{}
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: role}, nil)
	return NewService(repo, users, logger.NewNop()), repo
}

func TestList_StaffSeesOnlyOwnShifts(t *testing.T) {
	svc, repo := newService(domain.RoleCleaning)
	week := 2
	repo.On("List", mock.Anything, domain.ScheduleFilter{StaffID: ptr.Ptr(int64(7)), WeekNumber: &week}).
		Return([]*domain.StaffSchedule{{ID: 1, StaffID: 7}}, nil)

	schedules, err := svc.List(context.Background(), 7, domain.ScheduleFilter{WeekNumber: &week})

	require.NoError(t, err)
	assert.Len(t, schedules, 1)
}

func TestList_StaffCannotRequestOthers(t *testing.T) {
	svc, repo := newService(domain.RoleTechnical)

	_, err := svc.List(context.Background(), 7, domain.ScheduleFilter{StaffID: ptr.Ptr(int64(8))})

	assert.ErrorIs(t, err, ErrAccessDenied)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestList_ManagerSeesEveryone(t *testing.T) {
	svc, repo := newService(domain.RoleManager)
	repo.On("List", mock.Anything, domain.ScheduleFilter{}).Return([]*domain.StaffSchedule{{ID: 1}, {ID: 2}}, nil)

	schedules, err := svc.List(context.Background(), 7, domain.ScheduleFilter{})

	require.NoError(t, err)
	assert.Len(t, schedules, 2)
}

func TestDelete_Permissions(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		schedule *domain.StaffSchedule
		allowed  bool
	}{
		{"own shift", domain.RoleCleaning, &domain.StaffSchedule{ID: 3, StaffID: 7}, true},
		{"author", domain.RoleReceptionist, &domain.StaffSchedule{ID: 3, StaffID: 8, AddedBy: ptr.Ptr(int64(7))}, true},
		{"manager", domain.RoleManager, &domain.StaffSchedule{ID: 3, StaffID: 8}, true},
		{"someone else", domain.RoleCleaning, &domain.StaffSchedule{ID: 3, StaffID: 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(tt.role)
			repo.On("GetByID", mock.Anything, int64(3)).Return(tt.schedule, nil)
			repo.On("Delete", mock.Anything, int64(3)).Return(nil)

			err := svc.Delete(context.Background(), 3, 7)

			if tt.allowed {
				require.NoError(t, err)
				repo.AssertCalled(t, "Delete", mock.Anything, int64(3))
			} else {
				assert.ErrorIs(t, err, ErrAccessDenied)
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc, repo := newService(domain.RoleAdmin)
	repo.On("GetByID", mock.Anything, int64(3)).Return(nil, scheduleRepo.ErrScheduleNotFound)

	err := svc.Delete(context.Background(), 3, 7)

	assert.ErrorIs(t, err, ErrScheduleNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

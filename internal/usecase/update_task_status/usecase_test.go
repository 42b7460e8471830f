package update_task_status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	taskRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/task"
	"github.com/m04kA/SMC-PropertyService/pkg/logger"
	"github.com/m04kA/SMC-PropertyService/pkg/ptr"
)

type mockTaskRepo struct{ mock.Mock }

func (m *mockTaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*domain.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepo) UpdateStatus(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

type mockApartmentRepo struct{ mock.Mock }

func (m *mockApartmentRepo) MarkCleaned(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.User), args.Error(1)
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type countingEvents struct{ events []string }

func (c *countingEvents) RecordEvent(event string) { c.events = append(c.events, event) }

type fixture struct {
	tasks      *mockTaskRepo
	apartments *mockApartmentRepo
	users      *mockUserRepo
	events     *countingEvents
	uc         *UseCase
}

func newFixture(actorRole domain.Role, task *domain.Task) *fixture {
	f := &fixture{
		tasks:      &mockTaskRepo{},
		apartments: &mockApartmentRepo{},
		users:      &mockUserRepo{},
		events:     &countingEvents{},
	}
	f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: actorRole}, nil)
	f.tasks.On("GetByID", mock.Anything, task.ID).Return(task, nil)
	f.tasks.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil)
	f.apartments.On("MarkCleaned", mock.Anything, mock.Anything).Return(nil)
	f.uc = NewUseCase(f.tasks, f.apartments, f.users, inlineTx{}, f.events, logger.NewNop())
	return f
}

func assignedTask(status domain.TaskStatus) *domain.Task {
	return &domain.Task{ID: 3, Status: status, AssigneeIDs: []int64{7}, ApartmentIDs: []int64{11, 12}}
}

func TestExecute_CompletionMarksApartmentsCleaned(t *testing.T) {
	f := newFixture(domain.RoleCleaning, assignedTask(domain.TaskInProgress))

	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, TaskID: 3, Status: "completed"})

	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, resp.Task.Status)
	assert.Equal(t, []int64{11, 12}, resp.CleanedApartmentIDs)
	f.apartments.AssertCalled(t, "MarkCleaned", mock.Anything, []int64{11, 12})
	assert.Equal(t, []string{"task_completed"}, f.events.events)
}

func TestExecute_ProgressDoesNotTouchApartments(t *testing.T) {
	f := newFixture(domain.RoleCleaning, assignedTask(domain.TaskPending))

	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, TaskID: 3, Status: "in_progress"})

	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, resp.Task.Status)
	assert.Nil(t, resp.CleanedApartmentIDs)
	f.apartments.AssertNotCalled(t, "MarkCleaned", mock.Anything, mock.Anything)
	assert.Empty(t, f.events.events)
}

func TestExecute_PendingCannotJumpToCompleted(t *testing.T) {
	f := newFixture(domain.RoleCleaning, assignedTask(domain.TaskPending))

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, TaskID: 3, Status: "completed"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	detail, ok := domain.Detail(err)
	require.True(t, ok)
	assert.Equal(t, "Cannot complete a pending task without progress.", detail)
	f.tasks.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestExecute_CompletedIsFrozenForStaff(t *testing.T) {
	f := newFixture(domain.RoleCleaning, assignedTask(domain.TaskCompleted))

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, TaskID: 3, Status: "in_progress"})

	assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
}

func TestExecute_AdminCreatorReopensCompleted(t *testing.T) {
	task := &domain.Task{ID: 3, Status: domain.TaskCompleted, AddedBy: ptr.Ptr(int64(7)), ApartmentIDs: []int64{11}}
	f := newFixture(domain.RoleAdmin, task)

	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, TaskID: 3, Status: "in_progress"})

	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, resp.Task.Status)
	f.apartments.AssertNotCalled(t, "MarkCleaned", mock.Anything, mock.Anything)
}

func TestExecute_NotAssigned(t *testing.T) {
	task := &domain.Task{ID: 3, Status: domain.TaskInProgress, AssigneeIDs: []int64{8}}
	f := newFixture(domain.RoleManager, task)

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, TaskID: 3, Status: "completed"})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, domain.ErrPermission)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(domain.RoleCleaning, assignedTask(domain.TaskPending))
		_, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, TaskID: 3, Status: "done"})
		assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
	})

	t.Run("task not found", func(t *testing.T) {
		f := newFixture(domain.RoleCleaning, assignedTask(domain.TaskPending))
		f.tasks.On("GetByID", mock.Anything, int64(404)).Return(nil, taskRepo.ErrTaskNotFound)
		_, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, TaskID: 404, Status: "in_progress"})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("mark cleaned fails", func(t *testing.T) {
		f := &fixture{tasks: &mockTaskRepo{}, apartments: &mockApartmentRepo{}, users: &mockUserRepo{}, events: &countingEvents{}}
		f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleCleaning}, nil)
		f.tasks.On("GetByID", mock.Anything, int64(3)).Return(assignedTask(domain.TaskInProgress), nil)
		f.tasks.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil)
		f.apartments.On("MarkCleaned", mock.Anything, mock.Anything).Return(errors.New("db down"))
		f.uc = NewUseCase(f.tasks, f.apartments, f.users, inlineTx{}, f.events, logger.NewNop())

		_, err := f.uc.Execute(context.Background(), &Request{ActorID: 7, TaskID: 3, Status: "completed"})

		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, f.events.events)
	})
}

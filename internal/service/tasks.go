package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/anmicius0/instructor-dashboard-api/internal/client"
	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskManager submits background tasks and answers task listings.
type TaskManager struct {
	store      *config.TaskStore
	dispatcher client.TaskDispatcher
	users      client.UserClient
	newID      func() string

	// mu serializes the duplicate check with task creation.
	mu sync.Mutex
}

// NewTaskManager creates a new TaskManager.
func NewTaskManager(store *config.TaskStore, dispatcher client.TaskDispatcher, users client.UserClient) *TaskManager {
	return &TaskManager{
		store:      store,
		dispatcher: dispatcher,
		users:      users,
		newID:      uuid.NewString,
	}
}

type taskInput struct {
	ProblemURL string `json:"problem_url"`
	Student    string `json:"student,omitempty"`
}

// SubmitRescoreForStudent rescores one student's submission of a problem.
func (tm *TaskManager) SubmitRescoreForStudent(ctx context.Context, courseID, moduleStateKey, email, requester string) (config.Task, error) {
	user, err := tm.users.GetUserByEmail(ctx, email)
	if err != nil {
		return config.Task{}, err
	}
	return tm.submit(ctx, config.TaskTypeRescoreProblem, courseID, moduleStateKey, user.Email, requester)
}

// SubmitRescoreForAllStudents rescores every submission of a problem.
func (tm *TaskManager) SubmitRescoreForAllStudents(ctx context.Context, courseID, moduleStateKey, requester string) (config.Task, error) {
	return tm.submit(ctx, config.TaskTypeRescoreProblem, courseID, moduleStateKey, "", requester)
}

// SubmitResetAttemptsForAllStudents resets attempts on a problem for every student.
func (tm *TaskManager) SubmitResetAttemptsForAllStudents(ctx context.Context, courseID, moduleStateKey, requester string) (config.Task, error) {
	return tm.submit(ctx, config.TaskTypeResetProblemAttempts, courseID, moduleStateKey, "", requester)
}

// RunningTasks lists tasks of the course that have not finished, after asking
// the background processor for their current state.
func (tm *TaskManager) RunningTasks(ctx context.Context, courseID string) []config.Task {
	for _, task := range tm.store.Running(courseID) {
		tm.refresh(ctx, task)
	}
	return tm.store.Running(courseID)
}

// TaskHistory lists every task for a problem, narrowed to one student when email is set.
func (tm *TaskManager) TaskHistory(ctx context.Context, courseID, moduleStateKey, email string) ([]config.Task, error) {
	if email != "" {
		user, err := tm.users.GetUserByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		email = user.Email
	}
	history := tm.store.History(courseID, moduleStateKey, email)
	for i := range history {
		history[i] = tm.refresh(ctx, history[i])
	}
	return history, nil
}

// refresh updates a dispatched, unfinished task with the state the background
// processor reports for it. Tasks still being dispatched are left alone. When
// the processor cannot be reached the stored state is kept.
func (tm *TaskManager) refresh(ctx context.Context, task config.Task) config.Task {
	if task.State != config.TaskStateQueued && task.State != config.TaskStateProgress {
		return task
	}
	state, err := tm.dispatcher.TaskState(ctx, task)
	if err != nil {
		utils.WithComponent("tasks").Warn("Failed to refresh task state",
			zap.String(utils.FieldTaskID, task.ID),
			zap.Error(err))
		return task
	}
	if state != task.State {
		NewTaskProgressTracker(tm.store, task.ID).SetState(state)
	}
	if updated, ok := tm.store.GetTask(task.ID); ok {
		return updated
	}
	return task
}

func (tm *TaskManager) submit(ctx context.Context, taskType config.TaskType, courseID, moduleStateKey, email, requester string) (config.Task, error) {
	input, err := json.Marshal(taskInput{ProblemURL: moduleStateKey, Student: email})
	if err != nil {
		return config.Task{}, fmt.Errorf("failed to encode task input: %w", err)
	}

	tm.mu.Lock()
	if running, ok := tm.store.FindRunning(courseID, taskType, moduleStateKey, email); ok {
		if running = tm.refresh(ctx, running); running.State.Running() {
			tm.mu.Unlock()
			return config.Task{}, fmt.Errorf("%w: %s %s", ErrTaskAlreadyRunning, running.Type, running.ID)
		}
	}
	task := tm.store.CreateTask(config.Task{
		ID:             tm.newID(),
		Type:           taskType,
		CourseID:       courseID,
		ModuleStateKey: moduleStateKey,
		StudentEmail:   email,
		Input:          string(input),
		Requester:      requester,
	})
	tm.mu.Unlock()

	logger := utils.WithComponent("tasks")
	logger.Info("Task submitted",
		zap.String(utils.FieldTaskID, task.ID),
		zap.String(utils.FieldTaskType, string(taskType)),
		zap.String(utils.FieldCourseID, courseID),
		zap.String(utils.FieldModuleKey, moduleStateKey))

	tracker := NewTaskProgressTracker(tm.store, task.ID)
	if err := tm.dispatcher.Dispatch(ctx, task); err != nil {
		tracker.MarkFailed(err)
		return config.Task{}, fmt.Errorf("failed to dispatch task %s: %w", task.ID, err)
	}
	tracker.SetQueued()

	task, _ = tm.store.GetTask(task.ID)
	return task, nil
}

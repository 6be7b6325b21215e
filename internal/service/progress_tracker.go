// internal/service/progress_tracker.go
package service

import (
	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"go.uber.org/zap"
)

// TaskProgressTracker records dispatch progress of one submitted task.
type TaskProgressTracker struct {
	taskStore *config.TaskStore
	taskID    string
}

// NewTaskProgressTracker creates a new task progress tracker.
func NewTaskProgressTracker(taskStore *config.TaskStore, taskID string) *TaskProgressTracker {
	return &TaskProgressTracker{
		taskStore: taskStore,
		taskID:    taskID,
	}
}

var stateMessages = map[config.TaskState]string{
	config.TaskStateQueued:   "Task queued",
	config.TaskStateProgress: "Task in progress",
	config.TaskStateSuccess:  "Task completed",
	config.TaskStateFailure:  "Task failed",
}

// SetQueued marks the task as accepted by the background processor.
func (tpt *TaskProgressTracker) SetQueued() {
	tpt.SetState(config.TaskStateQueued)
}

// SetState records the state last reported by the background processor.
func (tpt *TaskProgressTracker) SetState(state config.TaskState) {
	_ = tpt.taskStore.UpdateTask(tpt.taskID, func(task *config.Task) {
		task.State = state
		task.Message = stateMessages[state]
	})

	if !state.Running() {
		utils.WithComponent("task_tracker").Info("Task finished",
			zap.String(utils.FieldTaskID, tpt.taskID),
			zap.String("task_state", string(state)))
	}
}

// MarkFailed marks the task as failed when it could not be dispatched.
func (tpt *TaskProgressTracker) MarkFailed(err error) {
	_ = tpt.taskStore.UpdateTask(tpt.taskID, func(task *config.Task) {
		task.State = config.TaskStateFailure
		task.Message = "Dispatch failed: " + err.Error()
	})

	utils.WithComponent("task_tracker").Error("Task marked as failed",
		zap.String(utils.FieldTaskID, tpt.taskID),
		zap.Error(err))
}

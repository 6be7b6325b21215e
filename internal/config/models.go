// internal/config/models.go
// Package config provides configuration loading, validation, and the background task records.
package config

import (
	"fmt"
	"strings"
	"time"
)

// TaskType names the kind of background work submitted for a course.
type TaskType string

const (
	TaskTypeRescoreProblem       TaskType = "rescore_problem"
	TaskTypeResetProblemAttempts TaskType = "reset_problem_attempts"
)

// TaskState is the lifecycle state of a submitted task.
type TaskState string

const (
	TaskStateQueuing  TaskState = "QUEUING"
	TaskStateQueued   TaskState = "QUEUED"
	TaskStateProgress TaskState = "PROGRESS"
	TaskStateSuccess  TaskState = "SUCCESS"
	TaskStateFailure  TaskState = "FAILURE"
)

// ParseTaskState validates a state name reported by a task processor.
func ParseTaskState(s string) (TaskState, error) {
	switch state := TaskState(strings.ToUpper(strings.TrimSpace(s))); state {
	case TaskStateQueuing, TaskStateQueued, TaskStateProgress, TaskStateSuccess, TaskStateFailure:
		return state, nil
	}
	return "", fmt.Errorf("unknown task state '%s'", s)
}

// Running reports whether a task in this state may still do work.
func (s TaskState) Running() bool {
	switch s {
	case TaskStateQueuing, TaskStateQueued, TaskStateProgress:
		return true
	}
	return false
}

// Task is one background job submission for a course problem.
type Task struct {
	// ID is the unique identifier for this task
	ID string
	// Type is the kind of work (rescore or attempt reset)
	Type TaskType
	// CourseID is the org/course/run the task belongs to
	CourseID string
	// ModuleStateKey identifies the problem the task operates on
	ModuleStateKey string
	// StudentEmail limits the task to one student; empty means all students
	StudentEmail string
	// Input is the JSON-encoded task input as handed to the task processor
	Input string
	// Requester is the username that submitted the task
	Requester string
	// State is the current lifecycle state
	State TaskState
	// Message is a human-readable status message
	Message string
	// CreatedAt is the time the task was submitted
	CreatedAt time.Time
	// UpdatedAt is the time of the last state change
	UpdatedAt time.Time
}

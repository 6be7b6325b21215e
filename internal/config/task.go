// Path: internal/config/task.go
package config

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// TaskStore keeps submitted tasks in memory. Lookups return copies.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*Task
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[string]*Task),
	}
}

// CreateTask stores a new task in the queuing state.
func (ts *TaskStore) CreateTask(task Task) Task {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	now := time.Now()
	task.State = TaskStateQueuing
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Message == "" {
		task.Message = "Task submitted"
	}
	ts.tasks[task.ID] = &task
	return task
}

// GetTask retrieves a task by ID.
func (ts *TaskStore) GetTask(id string) (Task, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	task, exists := ts.tasks[id]
	if !exists {
		return Task{}, false
	}
	return *task, true
}

// UpdateTask applies updateFn to the stored task.
func (ts *TaskStore) UpdateTask(id string, updateFn func(*Task)) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	task, exists := ts.tasks[id]
	if !exists {
		return fmt.Errorf("task %s not found", id)
	}
	updateFn(task)
	task.UpdatedAt = time.Now()
	return nil
}

// FindRunning returns a running task with the same course, type, problem and student.
func (ts *TaskStore) FindRunning(courseID string, taskType TaskType, moduleStateKey, studentEmail string) (Task, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	for _, task := range ts.tasks {
		if task.State.Running() &&
			task.CourseID == courseID &&
			task.Type == taskType &&
			task.ModuleStateKey == moduleStateKey &&
			task.StudentEmail == studentEmail {
			return *task, true
		}
	}
	return Task{}, false
}

// Running lists the course's running tasks, oldest first.
func (ts *TaskStore) Running(courseID string) []Task {
	return ts.filter(func(t *Task) bool {
		return t.CourseID == courseID && t.State.Running()
	})
}

// History lists all tasks for a course problem, oldest first. An empty
// studentEmail matches tasks for every student and for the whole course.
func (ts *TaskStore) History(courseID, moduleStateKey, studentEmail string) []Task {
	return ts.filter(func(t *Task) bool {
		if t.CourseID != courseID || t.ModuleStateKey != moduleStateKey {
			return false
		}
		return studentEmail == "" || t.StudentEmail == studentEmail
	})
}

func (ts *TaskStore) filter(keep func(*Task) bool) []Task {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	out := make([]Task, 0)
	for _, task := range ts.tasks {
		if keep(task) {
			out = append(out, *task)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

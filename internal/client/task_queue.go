package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskTypePrefix namespaces task types on the shared Redis queue.
const TaskTypePrefix = "instructor:"

// enqueuer is the part of *asynq.Client the queue uses.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// inspector is the part of *asynq.Inspector the queue uses.
type inspector interface {
	GetTaskInfo(queue, id string) (*asynq.TaskInfo, error)
	Close() error
}

// TaskQueue dispatches tasks to an asynq (Redis) queue consumed by the task workers.
type TaskQueue struct {
	client    enqueuer
	inspector inspector
	queue     string
}

// NewTaskQueue connects to Redis at redisAddr and publishes to the named queue.
func NewTaskQueue(redisAddr, queue string) *TaskQueue {
	opt := asynq.RedisClientOpt{Addr: redisAddr}
	return &TaskQueue{
		client:    asynq.NewClient(opt),
		inspector: asynq.NewInspector(opt),
		queue:     queue,
	}
}

// AsynqTaskType is the asynq type name for a task type.
func AsynqTaskType(taskType config.TaskType) string {
	return TaskTypePrefix + string(taskType)
}

// Dispatch enqueues the task, using the task ID as the asynq ID so a retry of the
// same submission cannot be queued twice.
func (q *TaskQueue) Dispatch(ctx context.Context, task config.Task) error {
	payload, err := json.Marshal(newTaskPayload(task))
	if err != nil {
		return fmt.Errorf("encode task '%s': %w", task.ID, err)
	}

	info, err := q.client.EnqueueContext(ctx,
		asynq.NewTask(AsynqTaskType(task.Type), payload),
		asynq.Queue(q.queue),
		asynq.TaskID(task.ID),
		asynq.Retention(config.DefaultTaskRetention),
	)
	if err != nil {
		return fmt.Errorf("enqueue task '%s' (%s) on '%s': %w", task.ID, task.Type, q.queue, err)
	}

	utils.WithComponent("task_queue").Debug("Task enqueued",
		zap.String(utils.FieldTaskID, info.ID),
		zap.String(utils.FieldTaskType, info.Type),
		zap.String("queue", info.Queue))
	return nil
}

// TaskState maps the asynq state of a dispatched task onto the task lifecycle.
// A task that is gone from the queue (retention expired or queue deleted) is
// reported as failed, since nothing will run it any more.
func (q *TaskQueue) TaskState(ctx context.Context, task config.Task) (config.TaskState, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	info, err := q.inspector.GetTaskInfo(q.queue, task.ID)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
			return config.TaskStateFailure, nil
		}
		return "", fmt.Errorf("inspect task '%s' on '%s': %w", task.ID, q.queue, err)
	}

	switch info.State {
	case asynq.TaskStatePending, asynq.TaskStateScheduled, asynq.TaskStateAggregating:
		return config.TaskStateQueued, nil
	case asynq.TaskStateActive, asynq.TaskStateRetry:
		return config.TaskStateProgress, nil
	case asynq.TaskStateCompleted:
		return config.TaskStateSuccess, nil
	case asynq.TaskStateArchived:
		return config.TaskStateFailure, nil
	}
	return "", fmt.Errorf("inspect task '%s': unexpected queue state %s", task.ID, info.State)
}

// Close closes the Redis connections.
func (q *TaskQueue) Close() error {
	return errors.Join(q.client.Close(), q.inspector.Close())
}

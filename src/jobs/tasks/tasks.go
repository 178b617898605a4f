// Package tasks defines the queue task types shared by the worker, the
// scheduler and the controllers that enqueue on demand.
package tasks

import (
	"github.com/hibiken/asynq"
)

// TypeForceOutAll closes every open attendance record. Fired by the
// closing-time schedule or enqueued from the force-out endpoint; carries no
// payload. The name is part of the queue contract, renaming it orphans
// already-scheduled entries.
const TypeForceOutAll = "attendance:force-out"

func NewForceOutAllTask() *asynq.Task {
	return asynq.NewTask(TypeForceOutAll, nil)
}

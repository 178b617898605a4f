package jobs

import (
	"testing"

	"library-attendance-backend/src/jobs/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForceOutAllTask(t *testing.T) {
	task := tasks.NewForceOutAllTask()
	require.NotNil(t, task)

	// The worker mux, the scheduler entry and the force-out endpoint all
	// enqueue or handle this exact name; it must stay stable.
	assert.Equal(t, "attendance:force-out", task.Type())
	assert.Equal(t, tasks.TypeForceOutAll, task.Type())

	// Close-everything needs no payload
	assert.Empty(t, task.Payload())
}

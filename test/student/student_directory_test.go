package student

import (
	"testing"

	"library-attendance-backend/src/models"
	"library-attendance-backend/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// directory replays the registration path against an in-memory slice, the
// same pre-insert existence check the student service runs against Mongo:
// any student matching the new rollNumber or cardId is a conflict.
type directory struct {
	students []models.Student
}

func (d *directory) register(s models.Student) error {
	for _, existing := range d.students {
		if existing.RollNumber == s.RollNumber || existing.CardID == s.CardID {
			return utils.ConflictError("Student with this roll number or card ID already exists")
		}
	}
	d.students = append(d.students, s)
	return nil
}

func TestStudentUniqueness(t *testing.T) {
	alice := models.Student{RollNumber: "R1", CardID: "C1", Name: "Alice", Branch: "CS"}
	bob := models.Student{RollNumber: "R2", CardID: "C2", Name: "Bob", Branch: "ECE"}

	t.Run("TestDistinctStudentsRegister", func(t *testing.T) {
		d := &directory{}
		require.NoError(t, d.register(alice))
		require.NoError(t, d.register(bob))
		assert.Len(t, d.students, 2)
	})

	t.Run("TestDuplicateRollNumberRejected", func(t *testing.T) {
		d := &directory{}
		require.NoError(t, d.register(alice))

		dup := models.Student{RollNumber: "R1", CardID: "C9", Name: "Mallory", Branch: "EEE"}
		err := d.register(dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrConflict)

		// the rejection must leave the directory unchanged
		require.Len(t, d.students, 1)
		assert.Equal(t, "Alice", d.students[0].Name)
	})

	t.Run("TestDuplicateCardIDRejected", func(t *testing.T) {
		d := &directory{}
		require.NoError(t, d.register(alice))

		dup := models.Student{RollNumber: "R9", CardID: "C1", Name: "Mallory", Branch: "EEE"}
		err := d.register(dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrConflict)

		require.Len(t, d.students, 1)
		assert.Equal(t, "R1", d.students[0].RollNumber)
	})

	t.Run("TestConflictMapsTo400", func(t *testing.T) {
		err := utils.ConflictError("Student with this roll number or card ID already exists")
		assert.Equal(t, 400, utils.StatusFromError(err))
	})
}

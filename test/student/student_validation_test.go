package student

import (
	"testing"
	"time"

	"library-attendance-backend/src/models"
	"library-attendance-backend/src/utils"
	"library-attendance-backend/test"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestStudentValidation(t *testing.T) {
	timer := test.NewTestTimer("Student Validation")
	defer func() {
		test.PerformanceAssertion(t, "Student Validation", timer.Stop(), 2*time.Second)
	}()

	t.Run("TestValidStudent", func(t *testing.T) {
		student := models.Student{
			RollNumber: "22AT1A0489",
			CardID:     "A1B2C3D4",
			Name:       "Alice",
			Branch:     "CSE",
			Mobile:     "9876543210",
			Email:      "alice@example.com",
		}
		assert.NoError(t, validate.Struct(&student))
	})

	t.Run("TestOptionalFieldsMayBeEmpty", func(t *testing.T) {
		student := models.Student{
			RollNumber: "R1",
			CardID:     "C1",
			Name:       "Alice",
			Branch:     "CS",
		}
		assert.NoError(t, validate.Struct(&student))
	})

	t.Run("TestMissingRequiredFields", func(t *testing.T) {
		cases := map[string]models.Student{
			"no rollNumber": {CardID: "C1", Name: "Alice", Branch: "CS"},
			"no cardId":     {RollNumber: "R1", Name: "Alice", Branch: "CS"},
			"no name":       {RollNumber: "R1", CardID: "C1", Branch: "CS"},
			"no branch":     {RollNumber: "R1", CardID: "C1", Name: "Alice"},
		}
		for name, student := range cases {
			assert.Error(t, validate.Struct(&student), name)
		}
	})

	t.Run("TestBadOptionalValues", func(t *testing.T) {
		badEmail := models.Student{RollNumber: "R1", CardID: "C1", Name: "Alice", Branch: "CS", Email: "not-an-email"}
		assert.Error(t, validate.Struct(&badEmail))

		shortMobile := models.Student{RollNumber: "R1", CardID: "C1", Name: "Alice", Branch: "CS", Mobile: "12345"}
		assert.Error(t, validate.Struct(&shortMobile))

		alphaMobile := models.Student{RollNumber: "R1", CardID: "C1", Name: "Alice", Branch: "CS", Mobile: "987654321x"}
		assert.Error(t, validate.Struct(&alphaMobile))
	})
}

func TestRandomMobile(t *testing.T) {
	// The bulk insert fills missing mobiles with these; they must look like
	// real Indian mobile numbers.
	for i := 0; i < 100; i++ {
		mobile := utils.RandomMobile()
		assert.Len(t, mobile, 10)
		assert.Contains(t, "6789", string(mobile[0]))
		for _, ch := range mobile {
			assert.True(t, ch >= '0' && ch <= '9')
		}
	}
}

package services

import (
	"context"
	"fmt"
	"strings"

	DB "library-attendance-backend/src/database"
	"library-attendance-backend/src/models"
	"library-attendance-backend/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var seedBranches = []string{"CSE", "ECE", "EEE", "MECH", "CIVIL"}

// SeedStudents inserts n sample students so a scanner bench can be exercised
// without real enrollment data. Card ids come from UUIDs, so re-seeding on a
// non-empty directory only collides on the SEED roll numbers; the unordered
// insert keeps whatever does not collide.
func SeedStudents(n int) (int, error) {
	if n <= 0 {
		return 0, utils.ValidationError("Seed count must be positive")
	}

	docs := make([]interface{}, 0, n)
	for i := 1; i <= n; i++ {
		card := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
		docs = append(docs, models.Student{
			RollNumber: fmt.Sprintf("SEED%04d", i),
			CardID:     card,
			Name:       fmt.Sprintf("Seed Student %d", i),
			Branch:     seedBranches[(i-1)%len(seedBranches)],
			Mobile:     utils.RandomMobile(),
		})
	}

	opts := options.InsertMany().SetOrdered(false)
	res, err := DB.StudentCollection.InsertMany(context.TODO(), docs, opts)
	if err != nil {
		if res != nil && len(res.InsertedIDs) > 0 {
			return len(res.InsertedIDs), nil
		}
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

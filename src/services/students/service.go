package students

import (
	"context"
	"log"

	"library-attendance-backend/src/database"
	"library-attendance-backend/src/models"
	"library-attendance-backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var studentCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	studentCollection = database.StudentCollection
	if studentCollection == nil {
		log.Fatal("Failed to get the students collection")
	}
}

// CreateStudent registers one student. Duplicate rollNumber or cardId is a
// conflict; the pre-insert check is backstopped by the unique indexes.
func CreateStudent(student *models.Student) error {
	ctx := context.TODO()

	count, err := studentCollection.CountDocuments(ctx, bson.M{
		"$or": bson.A{
			bson.M{"rollNumber": student.RollNumber},
			bson.M{"cardId": student.CardID},
		},
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.ConflictError("Student with this roll number or card ID already exists")
	}

	res, err := studentCollection.InsertOne(ctx, student)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError("Student with this roll number or card ID already exists")
		}
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		student.ID = oid
	}
	return nil
}

// GetStudents returns the whole directory sorted by roll number.
func GetStudents() ([]models.Student, error) {
	ctx := context.TODO()

	opts := options.Find().SetSort(bson.D{{Key: "rollNumber", Value: 1}})
	cursor, err := studentCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudentByCardID resolves the RFID token the scanner read.
func GetStudentByCardID(cardID string) (*models.Student, error) {
	var student models.Student
	err := studentCollection.FindOne(context.TODO(), bson.M{"cardId": cardID}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("Student not found")
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudents bulk-registers a list. Missing mobiles are auto-filled and
// the insert is unordered, so one duplicate does not block the rest; the
// returned count is how many actually landed.
func CreateStudents(studentList []models.Student) (int, error) {
	if len(studentList) == 0 {
		return 0, utils.ValidationError("No students provided")
	}

	docs := make([]interface{}, 0, len(studentList))
	for _, s := range studentList {
		if s.Mobile == "" {
			s.Mobile = utils.RandomMobile()
		}
		docs = append(docs, s)
	}

	opts := options.InsertMany().SetOrdered(false)
	res, err := studentCollection.InsertMany(context.TODO(), docs, opts)
	if err != nil {
		// Partial failures (duplicates among the batch) are tolerated.
		if res != nil && len(res.InsertedIDs) > 0 {
			return len(res.InsertedIDs), nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return 0, utils.ConflictError("All students in the batch already exist")
		}
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// UpdateStudent replaces the editable fields of one student by id.
func UpdateStudent(id string, student *models.Student) (*models.Student, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ValidationError("Invalid student ID")
	}

	update := bson.M{"$set": bson.M{
		"rollNumber": student.RollNumber,
		"cardId":     student.CardID,
		"name":       student.Name,
		"branch":     student.Branch,
		"mobile":     student.Mobile,
		"email":      student.Email,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Student
	err = studentCollection.FindOneAndUpdate(context.TODO(), bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("Student not found")
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.ConflictError("Another student already uses this roll number or card ID")
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteStudent removes one student by id.
func DeleteStudent(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ValidationError("Invalid student ID")
	}

	res, err := studentCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError("Student not found")
	}
	return nil
}

// DeleteAllStudents wipes the directory. Unguarded, reset use only.
func DeleteAllStudents() (int64, error) {
	res, err := studentCollection.DeleteMany(context.TODO(), bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

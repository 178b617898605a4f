package attendance

import (
	"context"
	"errors"
	"fmt"
	"log"

	"library-attendance-backend/src/database"
	"library-attendance-backend/src/models"
	"library-attendance-backend/src/services/students"
	"library-attendance-backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var attendanceCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	attendanceCollection = database.AttendanceCollection
	if attendanceCollection == nil {
		log.Fatal("Failed to get the attendances collection")
	}
}

// openRecordFilter matches the at-most-one record per card that has an
// in-time but no out-time yet.
func openRecordFilter(cardID string) bson.M {
	return bson.M{
		"cardId":  cardID,
		"outTime": bson.M{"$exists": false},
	}
}

// ScanCard is the toggle: no open record means an IN scan (insert), an open
// record means an OUT scan (close it). Exactly one ledger write either way.
// The find-then-write pair is not atomic; two simultaneous scans of one card
// can both see "no open record" and both insert. Accepted behavior.
func ScanCard(cardID string) (string, bool, error) {
	ctx := context.TODO()

	student, err := students.GetStudentByCardID(cardID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", false, utils.NotFoundError("Student not found in database")
		}
		return "", false, err
	}

	var active models.AttendanceRecord
	err = attendanceCollection.FindOne(ctx, openRecordFilter(cardID)).Decode(&active)

	if err == mongo.ErrNoDocuments {
		// IN scan
		now := utils.NowIST()
		record := models.AttendanceRecord{
			RollNumber: student.RollNumber,
			CardID:     student.CardID,
			Name:       student.Name,
			Branch:     student.Branch,
			InTime:     now,
			Date:       utils.DateStringIST(now),
		}
		if _, err := attendanceCollection.InsertOne(ctx, record); err != nil {
			return "", false, err
		}
		return fmt.Sprintf("IN Scan recorded for %s", student.Name), true, nil
	}
	if err != nil {
		return "", false, err
	}

	// OUT scan
	mins := active.Close(utils.NowIST())
	update := bson.M{"$set": bson.M{
		"outTime":  active.OutTime,
		"duration": active.Duration,
	}}
	if _, err := attendanceCollection.UpdateOne(ctx, bson.M{"_id": active.ID}, update); err != nil {
		return "", false, err
	}
	return fmt.Sprintf("OUT Scan recorded for %s | Duration: %d mins", student.Name, mins), false, nil
}

// RecordIn logs an in-time directly by roll number, bypassing the toggle.
// Kept for kiosks without a card reader. Unlike ScanCard it does not look for
// an existing open record, so calling it for a student already inside opens a
// second record for that card.
func RecordIn(rollNumber string) (*models.AttendanceRecord, error) {
	ctx := context.TODO()

	var student models.Student
	err := database.StudentCollection.FindOne(ctx, bson.M{"rollNumber": rollNumber}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("Student not found")
	}
	if err != nil {
		return nil, err
	}

	now := utils.NowIST()
	record := models.AttendanceRecord{
		RollNumber: student.RollNumber,
		CardID:     student.CardID,
		Name:       student.Name,
		Branch:     student.Branch,
		InTime:     now,
		Date:       utils.DateStringIST(now),
	}
	res, err := attendanceCollection.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}
	return &record, nil
}

// ClockOut closes one record by id, the manual counterpart of the OUT scan.
func ClockOut(id string) (*models.AttendanceRecord, error) {
	ctx := context.TODO()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ValidationError("Invalid record ID")
	}

	var record models.AttendanceRecord
	err = attendanceCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("Record not found")
	}
	if err != nil {
		return nil, err
	}
	if record.OutTime != nil {
		return nil, utils.ConflictError("Record already clocked out")
	}

	record.Close(utils.NowIST())
	update := bson.M{"$set": bson.M{
		"outTime":  record.OutTime,
		"duration": record.Duration,
	}}
	if _, err := attendanceCollection.UpdateOne(ctx, bson.M{"_id": record.ID}, update); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetActiveRecords lists everyone currently inside, newest in-time first.
func GetActiveRecords() ([]models.AttendanceRecord, error) {
	ctx := context.TODO()

	filter := bson.M{
		"inTime":  bson.M{"$exists": true},
		"outTime": bson.M{"$exists": false},
	}
	opts := options.Find().SetSort(bson.D{{Key: "inTime", Value: -1}})

	cursor, err := attendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ForceOutAll closes every open record with one shared timestamp, so
// everyone inside at closing time gets the same out instant. Durations still
// differ per record because each in-time does.
func ForceOutAll() ([]models.AttendanceRecord, error) {
	ctx := context.TODO()

	active, err := GetActiveRecords()
	if err != nil {
		return nil, err
	}

	now := utils.NowIST()
	updated := []models.AttendanceRecord{}
	for i := range active {
		record := &active[i]
		record.Close(now)
		update := bson.M{"$set": bson.M{
			"outTime":  record.OutTime,
			"duration": record.Duration,
		}}
		if _, err := attendanceCollection.UpdateOne(ctx, bson.M{"_id": record.ID}, update); err != nil {
			return nil, err
		}
		updated = append(updated, *record)
	}
	return updated, nil
}

// GetRecordsByDate returns records whose inTime falls inside the UTC day.
// An empty day is an empty list, never an error.
func GetRecordsByDate(date string) ([]models.AttendanceRecord, error) {
	start, end, err := utils.DayWindowUTC(date)
	if err != nil {
		return nil, utils.ValidationError("Invalid date, expected YYYY-MM-DD")
	}

	ctx := context.TODO()
	filter := bson.M{"inTime": bson.M{"$gte": start, "$lte": end}}

	cursor, err := attendanceCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetAllRecords returns the whole ledger, date descending. The sort is on the
// "YYYY-MM-DD" string, which matches chronological order for that format.
func GetAllRecords() ([]models.AttendanceRecord, error) {
	ctx := context.TODO()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := attendanceCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

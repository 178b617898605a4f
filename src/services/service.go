package services

import (
	"log"

	DB "library-attendance-backend/src/database"
)

func init() {
	if err := DB.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	if DB.StudentCollection == nil || DB.AttendanceCollection == nil {
		log.Fatal("Failed to get the required collections")
	}

	if DB.RedisURI != "" {
		DB.InitAsynq()
	}
}

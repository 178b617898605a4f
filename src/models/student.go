package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is one enrolled person. RollNumber is the human-readable id printed
// on the card, CardID is the RFID token the scanner reads. Both are unique
// across the directory.
type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RollNumber string             `bson:"rollNumber" json:"rollNumber" validate:"required"`
	CardID     string             `bson:"cardId" json:"cardId" validate:"required"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	Branch     string             `bson:"branch" json:"branch" validate:"required"`
	Mobile     string             `bson:"mobile,omitempty" json:"mobile,omitempty" validate:"omitempty,len=10,numeric"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
}

package models

import "time"

// User is a client who books trainer slots.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"password" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	IsBlocked    bool      `bson:"isBlocked" json:"isBlocked"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

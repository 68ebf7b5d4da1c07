package models

import "time"

// Trainer KYC statuses.
const (
	KycStatusPending   = "pending"
	KycStatusSubmitted = "submitted"
	KycStatusApproved  = "approved"
	KycStatusRejected  = "rejected"
)

// Trainer is a verified coach who publishes bookable slots.
type Trainer struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Password        string    `bson:"password" json:"-"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Specializations []string  `bson:"specializations" json:"specializations"`
	KycStatus       string    `bson:"kycStatus" json:"kycStatus"`
	KycDocuments    *KycDocs  `bson:"kycDocuments,omitempty" json:"kycDocuments,omitempty"`
	IsBlocked       bool      `bson:"isBlocked" json:"isBlocked"`
	ProfileImage    string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// KycDocs holds uploaded verification document URLs.
type KycDocs struct {
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	IDFront      string    `bson:"idFront,omitempty" json:"idFront,omitempty"`
	IDBack       string    `bson:"idBack,omitempty" json:"idBack,omitempty"`
	Certificate  string    `bson:"certificate,omitempty" json:"certificate,omitempty"`
	SubmittedAt  time.Time `bson:"submittedAt" json:"submittedAt"`
}

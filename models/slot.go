package models

import "time"

// Wire formats for slot dates and wall-clock times.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot lifecycle statuses.
const (
	SlotStatusPending    = "Pending"
	SlotStatusConfirmed  = "Confirmed"
	SlotStatusCompleted  = "Completed"
	SlotStatusCancelled  = "Cancelled"
	SlotStatusInProgress = "InProgress"
)

// Slot represents a trainer-published availability window. A single-session
// slot covers one calendar day; a package slot spans StartDate through EndDate
// with one session per day.
type Slot struct {
	ID                string    `bson:"id" json:"id"`
	TrainerID         string    `bson:"trainerId" json:"trainerId"`
	SpecializationID  string    `bson:"specializationId" json:"specializationId"`
	StartDate         string    `bson:"startDate" json:"startDate"`                 // "2006-01-02"
	EndDate           string    `bson:"endDate,omitempty" json:"endDate,omitempty"` // package slots only
	StartTime         string    `bson:"startTime" json:"startTime"`                 // "15:04", same-day
	EndTime           string    `bson:"endTime" json:"endTime"`
	IsSingleSession   bool      `bson:"isSingleSession" json:"isSingleSession"`
	Price             float64   `bson:"price" json:"price"`
	IsBooked          bool      `bson:"isBooked" json:"isBooked"`
	CompletedSessions int       `bson:"completedSessions,omitempty" json:"completedSessions,omitempty"`
	Status            string    `bson:"status" json:"status"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SlotInput is the payload for creating one slot or a recurring batch.
type SlotInput struct {
	TrainerID        string  `json:"trainerId" binding:"required"`
	SpecializationID string  `json:"specializationId" binding:"required"`
	StartDate        string  `json:"startDate" binding:"required"`
	EndDate          string  `json:"endDate,omitempty"`
	StartTime        string  `json:"startTime" binding:"required"`
	EndTime          string  `json:"endTime" binding:"required"`
	IsSingleSession  bool    `json:"isSingleSession"`
	Price            float64 `json:"price"`
}

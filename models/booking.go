package models

import "time"

// Booking payment statuses.
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
	BookingStatusCompleted = "Completed"
)

// Session types denormalized onto bookings.
const (
	SessionTypeSingle  = "Single Session"
	SessionTypePackage = "Package Session"
)

// Booking is a confirmed purchase of one slot by one user. Slot fields are
// snapshotted at booking time so the record survives slot deletion.
type Booking struct {
	ID                    string     `bson:"id" json:"id"`
	SlotID                string     `bson:"slotId" json:"slotId"`
	TrainerID             string     `bson:"trainerId" json:"trainerId"`
	UserID                string     `bson:"userId" json:"userId"`
	Specialization        string     `bson:"specialization" json:"specialization"`
	SessionType           string     `bson:"sessionType" json:"sessionType"`
	BookingDate           time.Time  `bson:"bookingDate" json:"bookingDate"`
	StartDate             string     `bson:"startDate" json:"startDate"`
	EndDate               string     `bson:"endDate,omitempty" json:"endDate,omitempty"`
	StartTime             string     `bson:"startTime" json:"startTime"`
	EndTime               string     `bson:"endTime" json:"endTime"`
	Amount                float64    `bson:"amount" json:"amount"`
	PaymentStatus         string     `bson:"paymentStatus" json:"paymentStatus"`
	PaymentIntent         string     `bson:"payment_intent,omitempty" json:"payment_intent,omitempty"`
	Prescription          string     `bson:"prescription,omitempty" json:"prescription,omitempty"`
	SessionCompletionTime *time.Time `bson:"sessionCompletionTime,omitempty" json:"sessionCompletionTime,omitempty"`
	CreatedAt             time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// SessionStart combines the booking's snapshotted start date and wall-clock
// time into a single instant in the given location.
func (b *Booking) SessionStart(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, b.StartDate+" "+b.StartTime, loc)
}

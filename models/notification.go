package models

import "time"

// NotificationEntry is one item in a receiver's notification list.
type NotificationEntry struct {
	Content   string    `bson:"content" json:"content"`
	BookingID string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// NotificationList is the per-receiver document holding all notifications.
type NotificationList struct {
	ReceiverID    string              `bson:"receiverId" json:"receiverId"`
	Notifications []NotificationEntry `bson:"notifications" json:"notifications"`
}

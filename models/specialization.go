package models

// Specialization is a coaching discipline (e.g. strength, yoga, cardio).
type Specialization struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

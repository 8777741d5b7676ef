package models

import "time"

// ContactMessage is a contact form submission kept in the "contactmessage"
// collection.
type ContactMessage struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name" validate:"required"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Subject   string    `json:"subject" bson:"subject" validate:"required"`
	Message   string    `json:"message" bson:"message" validate:"required"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewContactMessage copies every submitted field and stamps the creation time.
func NewContactMessage(req ContactRequest, now time.Time) *ContactMessage {
	return &ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: now.UTC(),
	}
}

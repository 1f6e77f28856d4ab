package domain

import (
	"context"
	"strings"
)

// ContactRequest represents the contact form fields as typed by the visitor.
// Validation runs on the trimmed copy returned by Trimmed.
type ContactRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"required,min=10,max=20"`
	ServiceType string `json:"service_type" validate:"required,oneof=fotografia automacao"`
	Message     string `json:"message" validate:"required,min=10,max=1000"`
}

// Trimmed returns a copy with leading and trailing whitespace removed from every field.
func (r ContactRequest) Trimmed() ContactRequest {
	return ContactRequest{
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		Phone:       strings.TrimSpace(r.Phone),
		ServiceType: strings.TrimSpace(r.ServiceType),
		Message:     strings.TrimSpace(r.Message),
	}
}

// IsZero reports whether every field is empty (the form's initial state).
func (r ContactRequest) IsZero() bool {
	return r == ContactRequest{}
}

// ContactMessage is the row inserted into contact_messages
type ContactMessage struct {
	Name        string
	Email       string
	Phone       string
	ServiceType ServiceType
	Message     string
}

// ContactAck is the notice shown after a message was stored
type ContactAck struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContactRepository is insert-only: no read-back, no update, no delete.
type ContactRepository interface {
	Insert(ctx context.Context, msg *ContactMessage) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the request and stores it once
	SendContactMessage(ctx context.Context, req *ContactRequest) (*ContactAck, error)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FormState is the lifecycle of the contact form
type FormState string

const (
	FormIdle       FormState = "IDLE"
	FormSubmitting FormState = "SUBMITTING"
	FormSucceeded  FormState = "SUCCEEDED"
	FormFailed     FormState = "FAILED"
)

const (
	AckTitle                = "Mensagem enviada!"
	AckDescription          = "Obrigado! Sonia retornará em breve."
	SubmissionFailedMessage = "Erro ao enviar. Por favor, tente novamente."
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission of the same form has not finished.
var ErrSubmissionInFlight = errors.New("contact: submission already in progress")

// SubmissionError wraps a store failure during the insert. Its message is the
// generic user-facing notice; the cause is only for logs.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return SubmissionFailedMessage
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// ContactNotifier tells the site owner about a stored message. *email.EmailService satisfies it.
type ContactNotifier interface {
	IsConfigured() bool
	SendContactEmail(data email.ContactEmailData) error
}

// ContactForm holds the editable fields of one contact form and submits them
// at most once at a time. Validation failures never reach the store; store
// failures keep the fields so the visitor can resend by hand.
type ContactForm struct {
	repo     domain.ContactRepository
	validate *validator.Validate
	notifier ContactNotifier

	mu     sync.Mutex
	state  FormState
	fields domain.ContactRequest
}

func NewContactForm(repo domain.ContactRepository, validate *validator.Validate, notifier ContactNotifier) *ContactForm {
	return &ContactForm{
		repo:     repo,
		validate: validate,
		notifier: notifier,
		state:    FormIdle,
	}
}

func (f *ContactForm) SetFields(fields domain.ContactRequest) {
	f.mu.Lock()
	f.fields = fields
	f.mu.Unlock()
}

func (f *ContactForm) Fields() domain.ContactRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *ContactForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates the trimmed fields and, if all pass, inserts them once.
// Errors: validation.FieldErrors, *SubmissionError or ErrSubmissionInFlight.
func (f *ContactForm) Submit(ctx context.Context) (*domain.ContactAck, error) {
	f.mu.Lock()
	if f.state == FormSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}

	data := f.fields.Trimmed()
	if err := f.validate.Struct(data); err != nil {
		f.mu.Unlock()
		if fieldErrs, ok := validation.FormatFieldErrors(err); ok {
			return nil, fieldErrs
		}
		return nil, fmt.Errorf("contact: validate: %w", err)
	}

	f.state = FormSubmitting
	f.mu.Unlock()

	msg := &domain.ContactMessage{
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		ServiceType: domain.ServiceType(data.ServiceType),
		Message:     data.Message,
	}

	if err := f.repo.Insert(ctx, msg); err != nil {
		logger.Log.Error("Error submitting contact form", "error", err, "service_type", data.ServiceType)

		f.mu.Lock()
		f.state = FormFailed
		f.mu.Unlock()
		return nil, &SubmissionError{Err: err}
	}

	f.mu.Lock()
	f.state = FormSucceeded
	f.fields = domain.ContactRequest{}
	f.mu.Unlock()

	f.notify(msg)

	return &domain.ContactAck{
		Title:       AckTitle,
		Description: AckDescription,
	}, nil
}

// notify is best effort: the message is already stored.
func (f *ContactForm) notify(msg *domain.ContactMessage) {
	if f.notifier == nil || !f.notifier.IsConfigured() {
		return
	}

	err := f.notifier.SendContactEmail(email.ContactEmailData{
		SenderName:  msg.Name,
		SenderEmail: msg.Email,
		Phone:       msg.Phone,
		Service:     string(msg.ServiceType),
		Message:     msg.Message,
	})
	if err != nil {
		logger.Log.Warn("Contact notification email failed", "error", err)
	}
}

type contactUsecase struct {
	repo     domain.ContactRepository
	validate *validator.Validate
	notifier ContactNotifier
}

// NewContactUsecase creates a new contact usecase. notifier may be nil.
func NewContactUsecase(repo domain.ContactRepository, validate *validator.Validate, notifier ContactNotifier) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		validate: validate,
		notifier: notifier,
	}
}

// SendContactMessage submits req through a fresh form; each HTTP request is one form.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.ContactAck, error) {
	form := NewContactForm(uc.repo, uc.validate, uc.notifier)
	form.SetFields(*req)
	return form.Submit(ctx)
}

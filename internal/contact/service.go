package contact

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fooddash-be/internal/logger"
	"fooddash-be/internal/validate"

	"go.uber.org/zap"
)

type SubmitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Service interface {
	// Submit validates the form and records the message. Validation
	// failures are returned as validate.FieldErrors before any write.
	Submit(ctx context.Context, input SubmitInput) (*Submission, error)
}

type service struct {
	repo Repository

	mu     sync.Mutex
	lastID int64
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*Submission, error) {
	if errs := validateSubmit(input); len(errs) > 0 {
		return nil, errs
	}

	now := time.Now()
	sub := Submission{
		ID:          s.nextID(now),
		Name:        input.Name,
		Email:       input.Email,
		Message:     input.Message,
		SubmittedAt: now.Format(time.RFC3339),
	}

	if err := s.repo.Prepend(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}

	logger.FromCtx(ctx).Info("contact form submitted",
		zap.Int64("submission_id", sub.ID),
		zap.String("email", sub.Email),
	)

	return &sub, nil
}

func (s *service) nextID(now time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func validateSubmit(input SubmitInput) validate.FieldErrors {
	errs := validate.FieldErrors{}

	if validate.Blank(input.Name) {
		errs["name"] = "Name is required"
	}
	if validate.Blank(input.Email) {
		errs["email"] = "Email is required"
	} else if !validate.Email(input.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if validate.Blank(input.Message) {
		errs["message"] = "Message is required"
	}

	return errs
}

package domain

import (
	"context"
	"time"
)

// Feedback represents client feedback recorded against a project.
type Feedback struct {
	ID        int64     `json:"feedback_id"`
	ProjectID int64     `json:"project"`
	ClientID  int64     `json:"client"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackRepository is the port for feedback persistence.
type FeedbackRepository interface {
	ListFeedback(ctx context.Context) ([]Feedback, error)
	CreateFeedback(ctx context.Context, f Feedback) (*Feedback, error)
	GetFeedback(ctx context.Context, id int64) (*Feedback, error)
	UpdateFeedback(ctx context.Context, f Feedback) (*Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) (bool, error)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// PassThreshold is the minimum quiz score (percent) to pass a module.
const PassThreshold = 80

type TrainingModule struct {
	ID               uuid.UUID `json:"id"`
	ModuleNumber     int       `json:"module_number"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	OrderIndex       int       `json:"order_index"`
	IsRequired       bool      `json:"is_required"`
}

type QuizQuestion struct {
	ID            uuid.UUID `json:"id"`
	ModuleID      uuid.UUID `json:"module_id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty"`
	OrderIndex    int       `json:"order_index"`
}

type UserProgress struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	ModuleID     uuid.UUID  `json:"module_id"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	QuizScore    *int       `json:"quiz_score,omitempty"`
	QuizAttempts int        `json:"quiz_attempts"`
	Passed       bool       `json:"passed"`
}

type QuizSubmission struct {
	// Answers maps question id to the chosen answer text.
	Answers map[uuid.UUID]string `json:"answers" validate:"required,min=1"`
}

type QuizResult struct {
	Passed         bool `json:"passed"`
	Score          int  `json:"score"`
	CorrectCount   int  `json:"correct_count"`
	TotalQuestions int  `json:"total_questions"`
}

// ModuleDetail bundles a module with its questions and the caller's progress.
type ModuleDetail struct {
	Module    *TrainingModule `json:"module"`
	Questions []*QuizQuestion `json:"questions"`
	Progress  *UserProgress   `json:"progress,omitempty"`
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"stingwatch/internal/domain"
	"stingwatch/pkg/e"
	"stingwatch/pkg/validator"
)

type trainingService struct {
	training TrainingStore
	certs    CertificationEngine
	logger   *slog.Logger
	now      func() time.Time
}

func NewTrainingService(training TrainingStore, certs CertificationEngine, logger *slog.Logger) TrainingService {
	return &trainingService{
		training: training,
		certs:    certs,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *trainingService) ListModules(ctx context.Context) ([]*domain.TrainingModule, error) {
	return s.training.ListModules(ctx)
}

func (s *trainingService) ModuleDetail(ctx context.Context, userID, moduleID uuid.UUID) (*domain.ModuleDetail, error) {
	const op = "service.Training.ModuleDetail"

	module, err := s.training.GetModule(ctx, moduleID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	questions, err := s.training.QuestionsByModule(ctx, moduleID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	progress, err := s.training.ModuleProgress(ctx, userID, moduleID)
	if err != nil && !errors.Is(err, e.ErrNotFound) {
		return nil, e.Wrap(op, err)
	}

	return &domain.ModuleDetail{
		Module:    module,
		Questions: questions,
		Progress:  progress,
	}, nil
}

// StartModule is idempotent: an existing progress row is returned as-is.
func (s *trainingService) StartModule(ctx context.Context, userID, moduleID uuid.UUID) (*domain.UserProgress, error) {
	const op = "service.Training.StartModule"

	if _, err := s.training.GetModule(ctx, moduleID); err != nil {
		return nil, e.Wrap(op, err)
	}

	existing, err := s.training.ModuleProgress(ctx, userID, moduleID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, e.ErrNotFound) {
		return nil, e.Wrap(op, err)
	}

	progress := &domain.UserProgress{
		ID:        uuid.New(),
		UserID:    userID,
		ModuleID:  moduleID,
		StartedAt: s.now().UTC(),
	}
	if err := s.training.CreateProgress(ctx, progress); err != nil {
		return nil, e.Wrap(op, err)
	}
	return progress, nil
}

// SubmitQuizAttempt grades a submission and records the attempt. Grading is
// deterministic and always returns a result; the follow-up certification
// issuance is logged on failure instead of failing the quiz, so it can be
// reconciled later.
func (s *trainingService) SubmitQuizAttempt(ctx context.Context, userID, moduleID uuid.UUID, submission domain.QuizSubmission) (*domain.QuizResult, error) {
	const op = "service.Training.SubmitQuizAttempt"

	if err := validator.ValidateStruct(submission); err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	questions, err := s.training.QuestionsByModule(ctx, moduleID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%s: no questions for module: %w", op, e.ErrNotFound)
	}

	result := grade(questions, submission.Answers)

	if err := s.recordAttempt(ctx, userID, moduleID, result); err != nil {
		return nil, e.Wrap(op, err)
	}

	if result.Passed {
		if err := s.certs.OnModuleCompletion(ctx, userID); err != nil {
			s.logger.Error("certification issuance failed after passed quiz",
				slog.String("user_id", userID.String()),
				slog.String("module_id", moduleID.String()),
				slog.Any("error", err),
			)
		}
	}

	return &result, nil
}

// grade is pure: score = round(correct/total*100), pass at the threshold.
func grade(questions []*domain.QuizQuestion, answers map[uuid.UUID]string) domain.QuizResult {
	correct := 0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectAnswer {
			correct++
		}
	}

	total := len(questions)
	score := int(math.Round(float64(correct) / float64(total) * 100))

	return domain.QuizResult{
		Passed:         score >= domain.PassThreshold,
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: total,
	}
}

func (s *trainingService) recordAttempt(ctx context.Context, userID, moduleID uuid.UUID, result domain.QuizResult) error {
	now := s.now().UTC()

	progress, err := s.training.ModuleProgress(ctx, userID, moduleID)
	if errors.Is(err, e.ErrNotFound) {
		progress = &domain.UserProgress{
			ID:        uuid.New(),
			UserID:    userID,
			ModuleID:  moduleID,
			StartedAt: now,
		}
		if err := s.training.CreateProgress(ctx, progress); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	score := result.Score
	progress.QuizScore = &score
	progress.QuizAttempts++
	// Best attempt wins: a failing retake never revokes an earlier pass.
	progress.Passed = progress.Passed || result.Passed
	if result.Passed && progress.CompletedAt == nil {
		progress.CompletedAt = &now
	}

	return s.training.UpdateProgress(ctx, progress)
}

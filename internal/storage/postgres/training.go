package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stingwatch/internal/domain"
	"stingwatch/pkg/e"
)

type TrainingRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTrainingRepo(pool *pgxpool.Pool, logger *slog.Logger) *TrainingRepo {
	return &TrainingRepo{pool: pool, logger: logger}
}

func (p *TrainingRepo) ListModules(ctx context.Context) ([]*domain.TrainingModule, error) {
	const op = "postgres.Training.ListModules"

	const query = `
		SELECT id, module_number, title, description, estimated_minutes, order_index, is_required
		FROM training_modules
		ORDER BY order_index
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var modules []*domain.TrainingModule
	for rows.Next() {
		var m domain.TrainingModule
		if err := rows.Scan(
			&m.ID,
			&m.ModuleNumber,
			&m.Title,
			&m.Description,
			&m.EstimatedMinutes,
			&m.OrderIndex,
			&m.IsRequired,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		modules = append(modules, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return modules, nil
}

func (p *TrainingRepo) GetModule(ctx context.Context, id uuid.UUID) (*domain.TrainingModule, error) {
	const op = "postgres.Training.GetModule"

	const query = `
		SELECT id, module_number, title, description, estimated_minutes, order_index, is_required
		FROM training_modules
		WHERE id = $1
	`

	var m domain.TrainingModule
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.ModuleNumber,
		&m.Title,
		&m.Description,
		&m.EstimatedMinutes,
		&m.OrderIndex,
		&m.IsRequired,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return &m, nil
}

func (p *TrainingRepo) QuestionsByModule(ctx context.Context, moduleID uuid.UUID) ([]*domain.QuizQuestion, error) {
	const op = "postgres.Training.QuestionsByModule"

	const query = `
		SELECT id, module_id, question_text, options, correct_answer, explanation, order_index
		FROM quiz_questions
		WHERE module_id = $1
		ORDER BY order_index
	`

	rows, err := p.pool.Query(ctx, query, moduleID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var questions []*domain.QuizQuestion
	for rows.Next() {
		var q domain.QuizQuestion
		if err := rows.Scan(
			&q.ID,
			&q.ModuleID,
			&q.Text,
			&q.Options,
			&q.CorrectAnswer,
			&q.Explanation,
			&q.OrderIndex,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return questions, nil
}

func (p *TrainingRepo) ProgressByUser(ctx context.Context, userID uuid.UUID) ([]*domain.UserProgress, error) {
	const op = "postgres.Training.ProgressByUser"

	const query = `
		SELECT id, user_id, module_id, started_at, completed_at, quiz_score, quiz_attempts, passed
		FROM user_progress
		WHERE user_id = $1
	`

	rows, err := p.pool.Query(ctx, query, userID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var progress []*domain.UserProgress
	for rows.Next() {
		var pr domain.UserProgress
		if err := rows.Scan(
			&pr.ID,
			&pr.UserID,
			&pr.ModuleID,
			&pr.StartedAt,
			&pr.CompletedAt,
			&pr.QuizScore,
			&pr.QuizAttempts,
			&pr.Passed,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		progress = append(progress, &pr)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return progress, nil
}

func (p *TrainingRepo) ModuleProgress(ctx context.Context, userID, moduleID uuid.UUID) (*domain.UserProgress, error) {
	const op = "postgres.Training.ModuleProgress"

	const query = `
		SELECT id, user_id, module_id, started_at, completed_at, quiz_score, quiz_attempts, passed
		FROM user_progress
		WHERE user_id = $1 AND module_id = $2
	`

	var pr domain.UserProgress
	err := p.pool.QueryRow(ctx, query, userID, moduleID).Scan(
		&pr.ID,
		&pr.UserID,
		&pr.ModuleID,
		&pr.StartedAt,
		&pr.CompletedAt,
		&pr.QuizScore,
		&pr.QuizAttempts,
		&pr.Passed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return &pr, nil
}

func (p *TrainingRepo) CreateProgress(ctx context.Context, progress *domain.UserProgress) error {
	const op = "postgres.Training.CreateProgress"

	const query = `
		INSERT INTO user_progress
			(id, user_id, module_id, started_at, completed_at, quiz_score, quiz_attempts, passed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := p.pool.Exec(ctx, query,
		progress.ID,
		progress.UserID,
		progress.ModuleID,
		progress.StartedAt,
		progress.CompletedAt,
		progress.QuizScore,
		progress.QuizAttempts,
		progress.Passed,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *TrainingRepo) UpdateProgress(ctx context.Context, progress *domain.UserProgress) error {
	const op = "postgres.Training.UpdateProgress"

	const query = `
		UPDATE user_progress
		SET completed_at = $2, quiz_score = $3, quiz_attempts = $4, passed = $5
		WHERE id = $1
	`

	tag, err := p.pool.Exec(ctx, query,
		progress.ID,
		progress.CompletedAt,
		progress.QuizScore,
		progress.QuizAttempts,
		progress.Passed,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kertapati/horizon-sub000/src/database"
	"github.com/kertapati/horizon-sub000/src/domain"
)

// YearNoteRepository implements domain.YearNoteRepository on Postgres
type YearNoteRepository struct {
	db     *database.DB
	logger *logrus.Logger
}

// NewYearNoteRepository creates a new year note repository
func NewYearNoteRepository(db *database.DB, logger *logrus.Logger) domain.YearNoteRepository {
	return &YearNoteRepository{
		db:     db,
		logger: logger,
	}
}

// GetByYear retrieves the user's note for one year
func (r *YearNoteRepository) GetByYear(ctx context.Context, userID, year int) (*domain.YearNote, error) {
	query := `SELECT id, user_id, year, body, created_at, updated_at
		FROM year_notes WHERE user_id = $1 AND year = $2`

	var note domain.YearNote
	err := r.db.QueryRowContext(ctx, query, userID, year).Scan(
		&note.ID, &note.UserID, &note.Year, &note.Body, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		r.logger.WithError(err).Error("failed to get year note")
		return nil, fmt.Errorf("failed to get year note: %w", err)
	}
	return &note, nil
}

// Upsert inserts or overwrites the user's note for one year
func (r *YearNoteRepository) Upsert(ctx context.Context, note *domain.YearNote) (*domain.YearNote, error) {
	query := `
		INSERT INTO year_notes (user_id, year, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, year)
		DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, year, body, created_at, updated_at`

	var saved domain.YearNote
	err := r.db.QueryRowContext(ctx, query,
		note.UserID, note.Year, note.Body, note.CreatedAt, note.UpdatedAt,
	).Scan(&saved.ID, &saved.UserID, &saved.Year, &saved.Body, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		r.logger.WithError(err).Error("failed to upsert year note")
		return nil, fmt.Errorf("failed to upsert year note: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"user_id": saved.UserID,
		"year":    saved.Year,
	}).Debug("year note saved")
	return &saved, nil
}

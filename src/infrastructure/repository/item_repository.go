package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/kertapati/horizon-sub000/src/database"
	"github.com/kertapati/horizon-sub000/src/domain"
	"github.com/kertapati/horizon-sub000/src/security"
)

// ItemRepository implements domain.ItemRepository on Postgres
type ItemRepository struct {
	db           *database.DB
	logger       *logrus.Logger
	sqlSanitizer *security.SQLSanitizer
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *database.DB, logger *logrus.Logger) domain.ItemRepository {
	return &ItemRepository{
		db:           db,
		logger:       logger,
		sqlSanitizer: security.NewSQLSanitizer(),
	}
}

const itemColumns = `id, user_id, title, description, categories, location_type, location,
	region, country, neighborhood, target_year, timeframe, seasons, season_notes,
	status, completed_date, completion_notes, owner, is_priority, is_physical,
	actionability, food_type, cuisine, price_level, difficulty, food_notes,
	archived, archived_at, related_ids, created_at, updated_at`

// Create creates a new item
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	categoriesJSON, err := json.Marshal(item.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal categories: %w", err)
	}
	seasonsJSON, err := json.Marshal(item.Seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal seasons: %w", err)
	}
	relatedJSON, err := json.Marshal(item.RelatedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal related ids: %w", err)
	}

	query := `
		INSERT INTO items (user_id, title, description, categories, location_type, location,
			region, country, neighborhood, target_year, timeframe, seasons, season_notes,
			status, completed_date, completion_notes, owner, is_priority, is_physical,
			actionability, food_type, cuisine, price_level, difficulty, food_notes,
			archived, related_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
		RETURNING id`

	var id int
	err = r.db.QueryRowContext(ctx, query,
		item.UserID, item.Title, item.Description, string(categoriesJSON),
		nullString(string(item.LocationType)), item.Location, nullString(string(item.Region)),
		item.Country, item.Neighborhood, nullInt(item.TargetYear),
		nullString(string(item.Timeframe)), string(seasonsJSON), item.SeasonNotes,
		string(item.Status), nullTime(item.CompletedDate), item.CompletionNotes,
		string(item.Owner), item.IsPriority, item.IsPhysical,
		nullString(string(item.Actionability)), nullString(string(item.FoodType)),
		item.Cuisine, nullString(string(item.PriceLevel)), nullString(string(item.Difficulty)),
		item.FoodNotes, item.Archived, string(relatedJSON), item.CreatedAt, item.UpdatedAt,
	).Scan(&id)

	if err != nil {
		r.logger.WithError(err).Error("failed to create item")
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	created := *item
	created.ID = id
	r.logger.WithFields(logrus.Fields{
		"item_id": id,
		"user_id": item.UserID,
	}).Info("item created")
	return &created, nil
}

// GetByID retrieves an item by ID for a specific user
func (r *ItemRepository) GetByID(ctx context.Context, userID, id int) (*domain.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE id = $1 AND user_id = $2`, itemColumns)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		r.logger.WithError(err).Error("failed to get item by id")
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// List retrieves the user's non-archived items with optional filtering
func (r *ItemRepository) List(ctx context.Context, userID int, filter domain.ItemFilter) ([]domain.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE user_id = $1 AND archived = FALSE`, itemColumns)
	args := []interface{}{userID}
	argCount := 1

	if filter.Category != "" {
		argCount++
		// Categories are stored as a JSON array of tags.
		query += fmt.Sprintf(" AND categories::jsonb ? $%d", argCount)
		args = append(args, string(filter.Category))
	}
	if filter.Status != "" {
		argCount++
		query += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, string(filter.Status))
	}
	if filter.Owner != "" {
		argCount++
		query += fmt.Sprintf(" AND owner = $%d", argCount)
		args = append(args, string(filter.Owner))
	}
	if filter.Search != "" {
		if err := r.sqlSanitizer.ValidateSearchQuery(filter.Search); err != nil {
			return nil, fmt.Errorf("invalid search query: %w", err)
		}
		argCount++
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d OR location ILIKE $%d)",
			argCount, argCount, argCount)
		args = append(args, "%"+r.sqlSanitizer.SanitizeSearchQuery(filter.Search)+"%")
	}

	query += " ORDER BY created_at DESC"

	return r.queryItems(ctx, query, args...)
}

// ListArchived retrieves the user's archived items, most recently archived first
func (r *ItemRepository) ListArchived(ctx context.Context, userID int) ([]domain.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE user_id = $1 AND archived = TRUE
		ORDER BY archived_at DESC NULLS LAST`, itemColumns)
	return r.queryItems(ctx, query, userID)
}

// Update overwrites an item's mutable fields
func (r *ItemRepository) Update(ctx context.Context, userID, id int, item *domain.Item) (*domain.Item, error) {
	categoriesJSON, err := json.Marshal(item.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal categories: %w", err)
	}
	seasonsJSON, err := json.Marshal(item.Seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal seasons: %w", err)
	}
	relatedJSON, err := json.Marshal(item.RelatedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal related ids: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE items
		SET title = $1, description = $2, categories = $3, location_type = $4, location = $5,
			region = $6, country = $7, neighborhood = $8, target_year = $9, timeframe = $10,
			seasons = $11, season_notes = $12, status = $13, completed_date = $14,
			completion_notes = $15, owner = $16, is_priority = $17, is_physical = $18,
			actionability = $19, food_type = $20, cuisine = $21, price_level = $22,
			difficulty = $23, food_notes = $24, related_ids = $25, updated_at = $26
		WHERE id = $27 AND user_id = $28
		RETURNING %s`, itemColumns)

	updated, err := scanItem(r.db.QueryRowContext(ctx, query,
		item.Title, item.Description, string(categoriesJSON),
		nullString(string(item.LocationType)), item.Location, nullString(string(item.Region)),
		item.Country, item.Neighborhood, nullInt(item.TargetYear),
		nullString(string(item.Timeframe)), string(seasonsJSON), item.SeasonNotes,
		string(item.Status), nullTime(item.CompletedDate), item.CompletionNotes,
		string(item.Owner), item.IsPriority, item.IsPhysical,
		nullString(string(item.Actionability)), nullString(string(item.FoodType)),
		item.Cuisine, nullString(string(item.PriceLevel)), nullString(string(item.Difficulty)),
		item.FoodNotes, string(relatedJSON), item.UpdatedAt, id, userID,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		r.logger.WithError(err).Error("failed to update item")
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return updated, nil
}

// UpdateStatus changes the status of several items at once. Completion
// stamps are handled in SQL so the bulk path matches the single toggle.
func (r *ItemRepository) UpdateStatus(ctx context.Context, userID int, ids []int, status domain.Status) error {
	now := time.Now()
	query := `
		UPDATE items
		SET status = $1,
			completed_date = CASE WHEN $1 = 'completed' THEN $2 ELSE NULL END,
			completion_notes = CASE WHEN $1 = 'completed' THEN completion_notes ELSE '' END,
			updated_at = $2
		WHERE user_id = $3 AND id = ANY($4)`

	result, err := r.db.ExecContext(ctx, query, string(status), now, userID, pq.Array(ids))
	if err != nil {
		r.logger.WithError(err).Error("failed to bulk update status")
		return fmt.Errorf("failed to bulk update status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   rowsAffected,
		"status":  status,
	}).Info("bulk status change applied")
	return nil
}

// Archive soft deletes an item
func (r *ItemRepository) Archive(ctx context.Context, userID, id int) error {
	now := time.Now()
	query := `UPDATE items SET archived = TRUE, archived_at = $1, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND archived = FALSE`
	return r.execExpectingRow(ctx, "archive", query, now, id, userID)
}

// Restore restores an archived item
func (r *ItemRepository) Restore(ctx context.Context, userID, id int) error {
	query := `UPDATE items SET archived = FALSE, archived_at = NULL, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND archived = TRUE`
	return r.execExpectingRow(ctx, "restore", query, time.Now(), id, userID)
}

// Delete permanently deletes an archived item
func (r *ItemRepository) Delete(ctx context.Context, userID, id int) error {
	query := `DELETE FROM items WHERE id = $1 AND user_id = $2 AND archived = TRUE`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		r.logger.WithError(err).Error("failed to delete item")
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	r.logger.WithFields(logrus.Fields{"item_id": id, "user_id": userID}).Info("item permanently deleted")
	return nil
}

func (r *ItemRepository) execExpectingRow(ctx context.Context, op, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithError(err).Errorf("failed to %s item", op)
		return fmt.Errorf("failed to %s item: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.WithError(err).Error("failed to list items")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.logger.WithError(err).Error("failed to scan item")
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		item           domain.Item
		categoriesJSON string
		seasonsJSON    sql.NullString
		relatedJSON    sql.NullString
		locationType   sql.NullString
		region         sql.NullString
		targetYear     sql.NullInt64
		timeframe      sql.NullString
		completedDate  sql.NullTime
		actionability  sql.NullString
		foodType       sql.NullString
		priceLevel     sql.NullString
		difficulty     sql.NullString
		archivedAt     sql.NullTime
	)

	err := row.Scan(
		&item.ID, &item.UserID, &item.Title, &item.Description, &categoriesJSON,
		&locationType, &item.Location, &region, &item.Country, &item.Neighborhood,
		&targetYear, &timeframe, &seasonsJSON, &item.SeasonNotes,
		&item.Status, &completedDate, &item.CompletionNotes, &item.Owner,
		&item.IsPriority, &item.IsPhysical, &actionability, &foodType,
		&item.Cuisine, &priceLevel, &difficulty, &item.FoodNotes,
		&item.Archived, &archivedAt, &relatedJSON, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(categoriesJSON), &item.Categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	if seasonsJSON.Valid && seasonsJSON.String != "" {
		if err := json.Unmarshal([]byte(seasonsJSON.String), &item.Seasons); err != nil {
			return nil, fmt.Errorf("failed to unmarshal seasons: %w", err)
		}
	}
	if relatedJSON.Valid && relatedJSON.String != "" {
		if err := json.Unmarshal([]byte(relatedJSON.String), &item.RelatedIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal related ids: %w", err)
		}
	}
	if locationType.Valid {
		item.LocationType = domain.LocationType(locationType.String)
	}
	if region.Valid {
		item.Region = domain.Region(region.String)
	}
	if targetYear.Valid {
		year := int(targetYear.Int64)
		item.TargetYear = &year
	}
	if timeframe.Valid {
		item.Timeframe = domain.Timeframe(timeframe.String)
	}
	if completedDate.Valid {
		item.CompletedDate = &completedDate.Time
	}
	if actionability.Valid {
		item.Actionability = domain.Actionability(actionability.String)
	}
	if foodType.Valid {
		item.FoodType = domain.FoodType(foodType.String)
	}
	if priceLevel.Valid {
		item.PriceLevel = domain.PriceLevel(priceLevel.String)
	}
	if difficulty.Valid {
		item.Difficulty = domain.Difficulty(difficulty.String)
	}
	if archivedAt.Valid {
		item.ArchivedAt = &archivedAt.Time
	}
	return &item, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

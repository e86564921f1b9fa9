package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahosmi/content-dashboard/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const contentCols = `id, title, platform, status, planned_date, tags, notes, created_at, updated_at`

// ListContent returns every content item sorted by planned date ascending.
func (r *Repository) ListContent(ctx context.Context) ([]model.Content, error) {
	q := `SELECT ` + contentCols + ` FROM content ORDER BY planned_date ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	out := make([]model.Content, 0)
	for rows.Next() {
		var c model.Content
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Platform, &c.Status, &c.PlannedDate, &c.Tags, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan content row: %w", err)
		}
		out = append(out, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// CreateContent inserts a draft, assigning the id and timestamps.
func (r *Repository) CreateContent(ctx context.Context, draft *model.ContentDraft) (*model.Content, error) {
	now := time.Now()
	c := model.Content{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Platform:    draft.Platform,
		Status:      draft.Status,
		PlannedDate: draft.PlannedDate,
		Tags:        draft.Tags,
		Notes:       draft.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}

	const q = `
INSERT INTO content (id, title, platform, status, planned_date, tags, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := r.db.Exec(ctx, q,
		c.ID, c.Title, c.Platform, c.Status, c.PlannedDate, c.Tags, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert content: %w", err)
	}
	return &c, nil
}

// UpdateContent applies a partial update and returns the updated item.
// Returns ErrNotFound when no row matches the id.
func (r *Repository) UpdateContent(ctx context.Context, id string, patch *model.ContentPatch) (*model.Content, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Platform != nil {
		updates["platform"] = *patch.Platform
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.PlannedDate != nil {
		updates["planned_date"] = *patch.PlannedDate
	}
	if patch.Tags != nil {
		updates["tags"] = *patch.Tags
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if len(updates) == 0 {
		// nothing to merge, still bump updated_at for parity with the store
		updates["updated_at"] = time.Now()
	}

	query := "UPDATE content SET updated_at = now()"
	args := []interface{}{}
	argId := 1

	for col, val := range updates {
		if col == "updated_at" {
			continue
		}
		query += fmt.Sprintf(", %s = $%d", col, argId)
		args = append(args, val)
		argId++
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argId, contentCols)
	args = append(args, id)

	var c model.Content
	row := r.db.QueryRow(ctx, query, args...)
	err := row.Scan(
		&c.ID, &c.Title, &c.Platform, &c.Status, &c.PlannedDate, &c.Tags, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("content %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update content: %w", err)
	}
	return &c, nil
}

// DeleteContent removes the item with the given id. Deleting an absent id is
// not an error; the endpoint is idempotent.
func (r *Repository) DeleteContent(ctx context.Context, id string) error {
	const q = `DELETE FROM content WHERE id = $1`
	if _, err := r.db.Exec(ctx, q, id); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}

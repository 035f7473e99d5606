package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/garderoba/internal/model"
)

// CreateComment creates a comment on a garment. authorID may be nil when the
// comment was posted without a session token.
func CreateComment(ctx context.Context, db *sql.DB, garmentID int64, authorID *int64, text string) (*model.Comment, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO comments (garment_id, author_id, text) VALUES (?, ?, ?)`,
		garmentID, authorID, text,
	)
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting comment id: %w", err)
	}

	return GetComment(ctx, db, id)
}

// GetComment returns a comment by ID.
func GetComment(ctx context.Context, db *sql.DB, id int64) (*model.Comment, error) {
	c := &model.Comment{}
	var authorID sql.NullInt64
	err := db.QueryRowContext(ctx,
		`SELECT id, garment_id, author_id, text, damaged, created_at
		 FROM comments WHERE id = ?`, id,
	).Scan(&c.ID, &c.GarmentID, &authorID, &c.Text, &c.Damaged, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting comment: %w", err)
	}
	if authorID.Valid {
		c.AuthorID = &authorID.Int64
	}
	return c, nil
}

// ListComments returns all comments in insertion order.
func ListComments(ctx context.Context, db *sql.DB) ([]model.Comment, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, garment_id, author_id, text, damaged, created_at
		 FROM comments ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// ListCommentsByGarment returns all comments attached to a garment.
func ListCommentsByGarment(ctx context.Context, db *sql.DB, garmentID int64) ([]model.Comment, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, garment_id, author_id, text, damaged, created_at
		 FROM comments WHERE garment_id = ? ORDER BY id`, garmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing comments by garment: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

func scanComments(rows *sql.Rows) ([]model.Comment, error) {
	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		var authorID sql.NullInt64
		if err := rows.Scan(&c.ID, &c.GarmentID, &authorID, &c.Text, &c.Damaged, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		if authorID.Valid {
			c.AuthorID = &authorID.Int64
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CommentExists checks if a comment with the given ID exists.
func CommentExists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM comments WHERE id = ?)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking comment existence: %w", err)
	}
	return exists, nil
}

// CommentPatch holds the optional fields of a comment update.
type CommentPatch struct {
	GarmentID *int64
	Text      *string
	Damaged   *bool
}

// Empty reports whether the patch carries no fields.
func (p CommentPatch) Empty() bool {
	return p.GarmentID == nil && p.Text == nil && p.Damaged == nil
}

// UpdateComment applies a partial update built only from present fields.
func UpdateComment(ctx context.Context, db *sql.DB, id int64, patch CommentPatch) error {
	var sets []string
	var args []any
	if patch.GarmentID != nil {
		sets = append(sets, "garment_id = ?")
		args = append(args, *patch.GarmentID)
	}
	if patch.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *patch.Text)
	}
	if patch.Damaged != nil {
		sets = append(sets, "damaged = ?")
		args = append(args, *patch.Damaged)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	_, err := db.ExecContext(ctx,
		`UPDATE comments SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		return fmt.Errorf("updating comment: %w", err)
	}
	return nil
}

// DeleteComment deletes a comment, returning the number of affected rows.
func DeleteComment(ctx context.Context, db *sql.DB, id int64) (int64, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting comment: %w", err)
	}
	return affected, nil
}

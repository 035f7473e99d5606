package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/garderoba/internal/model"
)

// CreateGarment stores a new garment with its binary content.
func CreateGarment(ctx context.Context, db *sql.DB, name, typ string, content []byte) (*model.Garment, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO garments (name, type, content) VALUES (?, ?, ?)`,
		name, typ, content,
	)
	if err != nil {
		return nil, fmt.Errorf("creating garment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting garment id: %w", err)
	}

	return GetGarment(ctx, db, id)
}

// GetGarment returns a garment's metadata by ID, without the content blob.
func GetGarment(ctx context.Context, db *sql.DB, id int64) (*model.Garment, error) {
	g := &model.Garment{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, type, damaged, created_at FROM garments WHERE id = ?`, id,
	).Scan(&g.ID, &g.Name, &g.Type, &g.Damaged, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting garment: %w", err)
	}
	return g, nil
}

// GetGarmentContent returns a garment's binary content and its type.
func GetGarmentContent(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var content []byte
	var typ string
	err := db.QueryRowContext(ctx,
		`SELECT content, type FROM garments WHERE id = ?`, id,
	).Scan(&content, &typ)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting garment content: %w", err)
	}
	return content, typ, nil
}

// ListGarments returns all garments in insertion order, without content.
func ListGarments(ctx context.Context, db *sql.DB) ([]model.Garment, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, type, damaged, created_at FROM garments ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing garments: %w", err)
	}
	defer rows.Close()

	return scanGarments(rows)
}

// ListGarmentsByLabel returns all garments associated with a label.
func ListGarmentsByLabel(ctx context.Context, db *sql.DB, labelID int64) ([]model.Garment, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT g.id, g.name, g.type, g.damaged, g.created_at
		 FROM garments g
		 JOIN garment_labels gl ON gl.garment_id = g.id
		 WHERE gl.label_id = ?
		 ORDER BY g.id`, labelID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing garments by label: %w", err)
	}
	defer rows.Close()

	return scanGarments(rows)
}

func scanGarments(rows *sql.Rows) ([]model.Garment, error) {
	var garments []model.Garment
	for rows.Next() {
		var g model.Garment
		if err := rows.Scan(&g.ID, &g.Name, &g.Type, &g.Damaged, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning garment: %w", err)
		}
		garments = append(garments, g)
	}
	return garments, rows.Err()
}

// GarmentExists checks if a garment with the given ID exists.
func GarmentExists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM garments WHERE id = ?)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking garment existence: %w", err)
	}
	return exists, nil
}

// GarmentNameExists checks if a garment with the given name exists.
func GarmentNameExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM garments WHERE name = ?)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking garment name: %w", err)
	}
	return exists, nil
}

// GarmentPatch holds the optional fields of a garment update. Only fields
// that are non-nil end up in the SET clause.
type GarmentPatch struct {
	Name    *string
	Damaged *bool
}

// Empty reports whether the patch carries no fields.
func (p GarmentPatch) Empty() bool {
	return p.Name == nil && p.Damaged == nil
}

// UpdateGarment applies a partial update built only from present fields.
func UpdateGarment(ctx context.Context, db *sql.DB, id int64, patch GarmentPatch) error {
	var sets []string
	var args []any
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
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
		`UPDATE garments SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		return fmt.Errorf("updating garment: %w", err)
	}
	return nil
}

// DeleteGarment deletes a garment, returning the number of affected rows.
// Dependent comments and label associations are removed by the FK cascade.
func DeleteGarment(ctx context.Context, db *sql.DB, id int64) (int64, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM garments WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting garment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting garment: %w", err)
	}
	return affected, nil
}

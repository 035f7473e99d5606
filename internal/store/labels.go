package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/garderoba/internal/model"
)

// CreateLabel creates a new label.
func CreateLabel(ctx context.Context, db *sql.DB, name, category string) (*model.Label, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO labels (name, category) VALUES (?, ?)`,
		name, category,
	)
	if err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting label id: %w", err)
	}

	return GetLabel(ctx, db, id)
}

// GetLabel returns a label by ID.
func GetLabel(ctx context.Context, db *sql.DB, id int64) (*model.Label, error) {
	l := &model.Label{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, category FROM labels WHERE id = ?`, id,
	).Scan(&l.ID, &l.Name, &l.Category)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting label: %w", err)
	}
	return l, nil
}

// ListLabels returns all labels in insertion order.
func ListLabels(ctx context.Context, db *sql.DB) ([]model.Label, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, category FROM labels ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	defer rows.Close()

	var labels []model.Label
	for rows.Next() {
		var l model.Label
		if err := rows.Scan(&l.ID, &l.Name, &l.Category); err != nil {
			return nil, fmt.Errorf("scanning label: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// ListLabelsByGarment returns all labels associated with a garment.
func ListLabelsByGarment(ctx context.Context, db *sql.DB, garmentID int64) ([]model.Label, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT l.id, l.name, l.category
		 FROM labels l
		 JOIN garment_labels gl ON gl.label_id = l.id
		 WHERE gl.garment_id = ?
		 ORDER BY l.id`, garmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing labels by garment: %w", err)
	}
	defer rows.Close()

	var labels []model.Label
	for rows.Next() {
		var l model.Label
		if err := rows.Scan(&l.ID, &l.Name, &l.Category); err != nil {
			return nil, fmt.Errorf("scanning label: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// LabelExists checks if a label with the given ID exists.
func LabelExists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM labels WHERE id = ?)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking label existence: %w", err)
	}
	return exists, nil
}

// LabelNameExists checks if a label with the given name exists.
func LabelNameExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM labels WHERE name = ?)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking label name: %w", err)
	}
	return exists, nil
}

// DeleteLabel deletes a label, returning the number of affected rows.
// Associations are removed by the FK cascade.
func DeleteLabel(ctx context.Context, db *sql.DB, id int64) (int64, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting label: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting label: %w", err)
	}
	return affected, nil
}

// AddGarmentLabel associates a label with a garment. A duplicate pair fails
// with a unique violation (see IsUniqueViolation).
func AddGarmentLabel(ctx context.Context, db *sql.DB, garmentID, labelID int64) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO garment_labels (garment_id, label_id) VALUES (?, ?)`,
		garmentID, labelID,
	)
	if err != nil {
		return fmt.Errorf("adding garment label: %w", err)
	}
	return nil
}

// AssociationExists checks if a garment-label association exists.
func AssociationExists(ctx context.Context, db *sql.DB, garmentID, labelID int64) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM garment_labels WHERE garment_id = ? AND label_id = ?)`,
		garmentID, labelID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking association existence: %w", err)
	}
	return exists, nil
}

// RemoveGarmentLabel removes a garment-label association, returning the
// number of affected rows.
func RemoveGarmentLabel(ctx context.Context, db *sql.DB, garmentID, labelID int64) (int64, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM garment_labels WHERE garment_id = ? AND label_id = ?`,
		garmentID, labelID,
	)
	if err != nil {
		return 0, fmt.Errorf("removing garment label: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("removing garment label: %w", err)
	}
	return affected, nil
}

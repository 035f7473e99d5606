package store

import (
	"context"
	"testing"

	"github.com/erazemk/garderoba/internal/db"
	"github.com/erazemk/garderoba/internal/model"
)

func TestCreateAndGetLabel(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	label, err := CreateLabel(ctx, database, "gorenjska", model.CategoryRegion)
	if err != nil {
		t.Fatalf("CreateLabel: %v", err)
	}
	if label.Name != "gorenjska" {
		t.Errorf("expected name 'gorenjska', got %q", label.Name)
	}
	if label.Category != model.CategoryRegion {
		t.Errorf("expected category 'region', got %q", label.Category)
	}
}

func TestLabelNameUnique(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateLabel(ctx, database, "gorenjska", model.CategoryRegion); err != nil {
		t.Fatalf("CreateLabel: %v", err)
	}

	_, err := CreateLabel(ctx, database, "gorenjska", model.CategoryOther)
	if err == nil {
		t.Fatal("expected error for duplicate name")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}
}

func TestGarmentLabelAssociation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	garment, _ := CreateGarment(ctx, database, "kilt.jpg", model.TypeImage, []byte("a"))
	label, _ := CreateLabel(ctx, database, "moski", model.CategoryGender)

	if err := AddGarmentLabel(ctx, database, garment.ID, label.ID); err != nil {
		t.Fatalf("AddGarmentLabel: %v", err)
	}

	exists, err := AssociationExists(ctx, database, garment.ID, label.ID)
	if err != nil {
		t.Fatalf("AssociationExists: %v", err)
	}
	if !exists {
		t.Error("expected association to exist")
	}

	// Duplicate pair must fail on the primary key.
	err = AddGarmentLabel(ctx, database, garment.ID, label.ID)
	if err == nil {
		t.Fatal("expected error for duplicate association")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}

	labels, _ := ListLabelsByGarment(ctx, database, garment.ID)
	if len(labels) != 1 {
		t.Errorf("expected 1 label, got %d", len(labels))
	}

	garments, _ := ListGarmentsByLabel(ctx, database, label.ID)
	if len(garments) != 1 {
		t.Errorf("expected 1 garment, got %d", len(garments))
	}

	affected, err := RemoveGarmentLabel(ctx, database, garment.ID, label.ID)
	if err != nil {
		t.Fatalf("RemoveGarmentLabel: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 affected row, got %d", affected)
	}

	exists, _ = AssociationExists(ctx, database, garment.ID, label.ID)
	if exists {
		t.Error("expected association to be gone")
	}
}

func TestDeleteLabelCascades(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	garment, _ := CreateGarment(ctx, database, "kilt.jpg", model.TypeImage, []byte("a"))
	label, _ := CreateLabel(ctx, database, "poletje", model.CategoryOther)
	AddGarmentLabel(ctx, database, garment.ID, label.ID)

	affected, err := DeleteLabel(ctx, database, label.ID)
	if err != nil {
		t.Fatalf("DeleteLabel: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 affected row, got %d", affected)
	}

	exists, _ := AssociationExists(ctx, database, garment.ID, label.ID)
	if exists {
		t.Error("expected association to cascade with label")
	}

	// The garment itself survives.
	got, _ := GetGarment(ctx, database, garment.ID)
	if got == nil {
		t.Error("expected garment to survive label deletion")
	}
}

func TestListLabels(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateLabel(ctx, database, "gorenjska", model.CategoryRegion)
	CreateLabel(ctx, database, "xl", model.CategorySize)

	labels, err := ListLabels(ctx, database)
	if err != nil {
		t.Fatalf("ListLabels: %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[0].Name != "gorenjska" || labels[1].Name != "xl" {
		t.Errorf("expected insertion order, got %q, %q", labels[0].Name, labels[1].Name)
	}
}

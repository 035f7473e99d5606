package store

import (
	"context"
	"testing"

	"github.com/erazemk/garderoba/internal/db"
	"github.com/erazemk/garderoba/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "ana", "hashed-password", model.RoleDancer)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Username != "ana" {
		t.Errorf("expected username 'ana', got %q", user.Username)
	}
	if user.Role != model.RoleDancer {
		t.Errorf("expected role 'dancer', got %q", user.Role)
	}

	got, err := GetUserByUsername(ctx, database, "ana")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Error("expected to find user by username")
	}
	if got.PasswordHash != "hashed-password" {
		t.Errorf("expected stored hash, got %q", got.PasswordHash)
	}
}

func TestUsernameUnique(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "ana", "h1", model.RoleDancer); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := CreateUser(ctx, database, "ana", "h2", model.RoleMusician)
	if err == nil {
		t.Fatal("expected error for duplicate username")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}
}

func TestUserExists(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "ana", "h", model.RoleWardrobeKeeper)

	exists, err := UserExists(ctx, database, "ana")
	if err != nil {
		t.Fatalf("UserExists: %v", err)
	}
	if !exists {
		t.Error("expected user to exist")
	}

	exists, _ = UserExists(ctx, database, "nobody")
	if exists {
		t.Error("expected 'nobody' to not exist")
	}
}

func TestGetUnknownUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := GetUserByUsername(ctx, database, "nobody")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if user != nil {
		t.Error("expected nil for unknown user")
	}
}

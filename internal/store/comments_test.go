package store

import (
	"context"
	"testing"

	"github.com/erazemk/garderoba/internal/db"
	"github.com/erazemk/garderoba/internal/model"
)

func TestCreateAndGetComment(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	garment, _ := CreateGarment(ctx, database, "kilt.jpg", model.TypeImage, []byte("a"))

	comment, err := CreateComment(ctx, database, garment.ID, nil, "hem is torn")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.Text != "hem is torn" {
		t.Errorf("expected text, got %q", comment.Text)
	}
	if comment.GarmentID != garment.ID {
		t.Errorf("expected garment_id %d, got %d", garment.ID, comment.GarmentID)
	}
	if comment.AuthorID != nil {
		t.Error("expected no author for anonymous comment")
	}
}

func TestCommentAuthor(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	garment, _ := CreateGarment(ctx, database, "kilt.jpg", model.TypeImage, []byte("a"))
	user, _ := CreateUser(ctx, database, "ana", "hash", model.RoleDancer)

	comment, err := CreateComment(ctx, database, garment.ID, &user.ID, "needs new buttons")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.AuthorID == nil || *comment.AuthorID != user.ID {
		t.Errorf("expected author %d, got %v", user.ID, comment.AuthorID)
	}
}

func TestListCommentsByGarment(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	g1, _ := CreateGarment(ctx, database, "kilt.jpg", model.TypeImage, []byte("a"))
	g2, _ := CreateGarment(ctx, database, "avba.jpg", model.TypeImage, []byte("b"))
	CreateComment(ctx, database, g1.ID, nil, "first")
	CreateComment(ctx, database, g1.ID, nil, "second")
	CreateComment(ctx, database, g2.ID, nil, "other")

	comments, err := ListCommentsByGarment(ctx, database, g1.ID)
	if err != nil {
		t.Fatalf("ListCommentsByGarment: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "first" || comments[1].Text != "second" {
		t.Errorf("expected insertion order, got %q, %q", comments[0].Text, comments[1].Text)
	}

	all, _ := ListComments(ctx, database)
	if len(all) != 3 {
		t.Errorf("expected 3 comments total, got %d", len(all))
	}
}

func TestUpdateCommentPartial(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	g1, _ := CreateGarment(ctx, database, "kilt.jpg", model.TypeImage, []byte("a"))
	g2, _ := CreateGarment(ctx, database, "avba.jpg", model.TypeImage, []byte("b"))
	comment, _ := CreateComment(ctx, database, g1.ID, nil, "original")

	text := "updated"
	if err := UpdateComment(ctx, database, comment.ID, CommentPatch{Text: &text}); err != nil {
		t.Fatalf("UpdateComment: %v", err)
	}

	got, _ := GetComment(ctx, database, comment.ID)
	if got.Text != "updated" {
		t.Errorf("expected text 'updated', got %q", got.Text)
	}
	if got.GarmentID != g1.ID {
		t.Error("expected garment_id unchanged")
	}

	if err := UpdateComment(ctx, database, comment.ID, CommentPatch{GarmentID: &g2.ID}); err != nil {
		t.Fatalf("UpdateComment: %v", err)
	}
	got, _ = GetComment(ctx, database, comment.ID)
	if got.GarmentID != g2.ID {
		t.Errorf("expected garment_id %d, got %d", g2.ID, got.GarmentID)
	}
}

func TestDeleteComment(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	garment, _ := CreateGarment(ctx, database, "kilt.jpg", model.TypeImage, []byte("a"))
	comment, _ := CreateComment(ctx, database, garment.ID, nil, "gone soon")

	affected, err := DeleteComment(ctx, database, comment.ID)
	if err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 affected row, got %d", affected)
	}

	got, _ := GetComment(ctx, database, comment.ID)
	if got != nil {
		t.Error("expected comment to be gone")
	}

	exists, _ := CommentExists(ctx, database, comment.ID)
	if exists {
		t.Error("expected comment to not exist")
	}
}

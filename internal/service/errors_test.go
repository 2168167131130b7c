package service

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestResourceErrorsWrapTaxonomy(t *testing.T) {
	cases := []struct {
		err  error
		base error
	}{
		{ErrReviewAlreadyExist, ErrDuplicateEntry},
		{ErrWishlistAlreadyExists, ErrDuplicateEntry},
		{ErrReviewForbidden, ErrForbidden},
		{ErrWishlistForbidden, ErrForbidden},
		{ErrDiaryForbidden, ErrForbidden},
		{ErrDestinationNotFound, ErrNotFound},
		{ErrReviewNotFound, ErrNotFound},
		{ErrDiaryNotFound, ErrNotFound},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.base) {
			t.Fatalf("expected %v to wrap %v", tc.err, tc.base)
		}
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	fields := fieldErrors{}
	fields.add("title", "title must be between 5 and 100 characters")
	fields.add("rating", "rating must be between 1 and 5")
	fields.add("rating", "ignored second message")

	err := fields.err()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError")
	}
	if vErr.Fields["rating"] != "rating must be between 1 and 5" {
		t.Fatalf("expected first message to win, got %q", vErr.Fields["rating"])
	}
	if err.Error() != "validation failed: rating, title" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if (fieldErrors{}).err() != nil {
		t.Fatalf("expected nil error for empty field set")
	}
}

func TestErrorClassifiers(t *testing.T) {
	if !isNotFound(fmt.Errorf("wrapped: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if !isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})) {
		t.Fatalf("expected 23505 to be a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation is not a unique violation")
	}
}

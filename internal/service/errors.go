package service

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Every service error wraps exactly one of these, so callers can branch on the
// class with errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrForbidden      = errors.New("not allowed")
	ErrNotFound       = errors.New("not found")
)

var (
	ErrDestinationNotFound = fmt.Errorf("%w: destination not found", ErrNotFound)

	ErrReviewAlreadyExist = fmt.Errorf("%w: review already exists for this destination", ErrDuplicateEntry)
	ErrReviewNotFound     = fmt.Errorf("%w: review not found", ErrNotFound)
	ErrReviewForbidden    = fmt.Errorf("%w: not allowed to manage this review", ErrForbidden)

	ErrWishlistAlreadyExists = fmt.Errorf("%w: destination already in wishlist", ErrDuplicateEntry)
	ErrWishlistNotFound      = fmt.Errorf("%w: wishlist entry not found", ErrNotFound)
	ErrWishlistForbidden     = fmt.Errorf("%w: not allowed to manage this wishlist entry", ErrForbidden)

	ErrDiaryNotFound  = fmt.Errorf("%w: diary entry not found", ErrNotFound)
	ErrDiaryForbidden = fmt.Errorf("%w: not allowed to manage this diary entry", ErrForbidden)

	ErrUserNotFound = fmt.Errorf("%w: user not found", ErrNotFound)
)

// ValidationError lists every offending field with a human readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type fieldErrors map[string]string

func (f fieldErrors) add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: map[string]string(f)}
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

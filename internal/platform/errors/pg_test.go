package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code, col, constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		ColumnName:     col,
		ConstraintName: constraint,
	}
}

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},    // unique violation
		{"23503", ErrorCodeInvalidArgument}, // fk violation -> invalid input
		{"23502", ErrorCodeValidation},      // not null
		{"23514", ErrorCodeValidation},      // check
		{"22001", ErrorCodeInvalidArgument}, // string truncation
		{"22P02", ErrorCodeInvalidArgument}, // invalid text representation
		{"57P03", ErrorCodeUnavailable},     // cannot connect now
		{"XXXXX", ErrorCodeDB},              // default branch
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pg(c.code, "", ""))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}

	// Non-pg error path
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("insert review: %w", pg("23505", "", "reviews_listing_user_key")), ErrorCodeDB, "db")
	if !IsDuplicateKey(wrapped) {
		t.Fatalf("IsDuplicateKey should unwrap to the PgError")
	}
	if IsForeignKeyViolation(wrapped) {
		t.Fatalf("wrong predicate matched")
	}
	if !IsSQLState(wrapped, "23505") {
		t.Fatalf("IsSQLState should match root cause")
	}
}

func TestFromPostgresVariants(t *testing.T) {
	// nil passthrough
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("FromPostgres(nil) should be nil")
	}
	if FromPostgresf(nil, "x %d", 1) != nil {
		t.Fatalf("FromPostgresf(nil) should be nil")
	}

	err := FromPostgres(pg("23505", "", "users_email_key"), "insert user")
	if CodeOf(err) != ErrorCodeDuplicateKey {
		t.Fatalf("FromPostgres mapped to %v", CodeOf(err))
	}

	// Non-pg still becomes a DB error
	err = FromPostgres(stderrs.New("broken pipe"), "query")
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("FromPostgres(non-pg) mapped to %v", CodeOf(err))
	}
}

func TestAttachFieldFromPg(t *testing.T) {
	// ColumnName wins
	err := FromPostgresWithField(pg("23502", "title", "listings_title_check"), "insert listing")
	if e, _ := As(err); e.Field() != "title" {
		t.Fatalf("field = %q, want title", e.Field())
	}

	// Fall back to constraint suffix
	err = FromPostgresWithField(pg("23505", "", "users_email_key1"), "insert user")
	if e, _ := As(err); e.Field() != "key1" {
		t.Fatalf("field = %q, want key1", e.Field())
	}

	// "key" suffix is too generic to attach
	err = FromPostgresWithField(pg("23505", "", "users_email_key"), "insert user")
	if e, _ := As(err); e.Field() != "" {
		t.Fatalf("field = %q, want empty", e.Field())
	}

	// Non-pg error is returned unchanged
	plain := stderrs.New("plain")
	if got := AttachFieldFromPg(plain); got != plain {
		t.Fatalf("AttachFieldFromPg should pass through non-pg errors")
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(nil) {
		t.Fatalf("nil is not retryable")
	}
	if IsRetryable(context.Canceled) || IsRetryable(fmt.Errorf("op: %w", context.DeadlineExceeded)) {
		t.Fatalf("local cancellation must not be retryable")
	}
	if !IsRetryable(pg("40001", "", "")) || !IsRetryable(pg("40P01", "", "")) {
		t.Fatalf("serialization/deadlock should be retryable")
	}
	if IsRetryable(pg("23505", "", "")) {
		t.Fatalf("unique violation is not retryable")
	}
	if !IsRetryable(stderrs.New("commit unexpectedly resulted in rollback")) {
		t.Fatalf("aborted commit text should be retryable")
	}
	if IsRetryable(stderrs.New("some other failure")) {
		t.Fatalf("unknown text should not be retryable")
	}
}

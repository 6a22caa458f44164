package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want ErrorClassification
	}{
		{"connection exception", pgerrcode.ConnectionException, Retryable},
		{"connection does not exist", pgerrcode.ConnectionDoesNotExist, Retryable},
		{"connection failure", pgerrcode.ConnectionFailure, Retryable},
		{"transaction rollback", pgerrcode.TransactionRollback, Retryable},
		{"serialization failure", pgerrcode.SerializationFailure, Retryable},
		{"deadlock detected", pgerrcode.DeadlockDetected, Retryable},
		{"cannot connect now", pgerrcode.CannotConnectNow, Retryable},

		{"data exception", pgerrcode.DataException, NonRetryable},
		{"null value not allowed", pgerrcode.NullValueNotAllowedDataException, NonRetryable},
		{"integrity constraint violation", pgerrcode.IntegrityConstraintViolation, NonRetryable},
		{"restrict violation", pgerrcode.RestrictViolation, NonRetryable},
		{"not null violation", pgerrcode.NotNullViolation, NonRetryable},
		{"foreign key violation", pgerrcode.ForeignKeyViolation, NonRetryable},
		{"unique violation", pgerrcode.UniqueViolation, NonRetryable},
		{"check violation", pgerrcode.CheckViolation, NonRetryable},
		{"syntax error or access rule violation", pgerrcode.SyntaxErrorOrAccessRuleViolation, NonRetryable},
		{"syntax error", pgerrcode.SyntaxError, NonRetryable},
		{"undefined column", pgerrcode.UndefinedColumn, NonRetryable},
		{"undefined table", pgerrcode.UndefinedTable, NonRetryable},
		{"undefined function", pgerrcode.UndefinedFunction, NonRetryable},

		{"unrecognised code defaults to non-retryable", pgerrcode.AdminShutdown, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPgError(&pgconn.PgError{Code: tt.code})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, NonRetryable, classifier.Classify(nil))
	})

	t.Run("non-postgres error", func(t *testing.T) {
		assert.Equal(t, NonRetryable, classifier.Classify(errors.New("connection refused")))
	})

	t.Run("wrapped pg error is unwrapped", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
		wrapped := fmt.Errorf("exec upsert: %w", pgErr)

		assert.Equal(t, Retryable, classifier.Classify(wrapped))
	})

	t.Run("wrapped constraint violation stays non-retryable", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		wrapped := fmt.Errorf("exec upsert: %w", pgErr)

		assert.Equal(t, NonRetryable, classifier.Classify(wrapped))
	})
}

func TestDB_WrapStorageError(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	t.Run("retryable driver error is tagged", func(t *testing.T) {
		err := db.wrapStorageError(ErrExecutingStatement, &pgconn.PgError{Code: pgerrcode.ConnectionFailure})

		assert.ErrorIs(t, err, ErrRetryableStorage)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})

	t.Run("non-retryable driver error keeps only the sentinel", func(t *testing.T) {
		err := db.wrapStorageError(ErrExecutingStatement, &pgconn.PgError{Code: pgerrcode.UniqueViolation})

		assert.NotErrorIs(t, err, ErrRetryableStorage)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})

	t.Run("nil classifier falls back to plain wrapping", func(t *testing.T) {
		bare := &DB{}
		err := bare.wrapStorageError(ErrExecutingQuery, errors.New("driver: bad connection"))

		assert.NotErrorIs(t, err, ErrRetryableStorage)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

//go:build unit

package infra

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []RepositoryErrorKind
		wantKind RepositoryErrorKind
	}{
		{name: "generic error defaults to db failure", err: assert.AnError, wantKind: KindDBFailure},
		{name: "no rows is not found", err: pgx.ErrNoRows, wantKind: KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantKind: KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantKind: KindForeignKeyViolated},
		{name: "explicit kind wins", err: assert.AnError, kind: []RepositoryErrorKind{KindNotFound}, wantKind: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("lookup failed", tt.err, tt.kind...)

			assert.True(t, IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "lookup failed")
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, IsKind(assert.AnError, KindDBFailure))
	assert.False(t, IsKind(nil, KindNotFound))
}

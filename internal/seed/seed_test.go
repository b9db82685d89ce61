package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execRecorder struct {
	statements []string
	args       []any
	tag        pgconn.CommandTag
	err        error
}

func (e *execRecorder) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.statements = append(e.statements, sql)
	e.args = args
	return e.tag, e.err
}

func (e *execRecorder) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (e *execRecorder) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func TestEnsureStaffRolesInsertsIfAbsent(t *testing.T) {
	db := &execRecorder{tag: pgconn.NewCommandTag("INSERT 0 4")}

	added, err := EnsureStaffRoles(context.Background(), db, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, int64(4), added)
	require.Len(t, db.statements, 1)
	assert.True(t, strings.HasSuffix(db.statements[0], "ON CONFLICT (role_name) DO NOTHING"))
	assert.Equal(t, []any{"Teacher", "Admin", "Principal", "Driver"}, db.args)
}

func TestEnsureStaffRolesSecondRunAddsNothing(t *testing.T) {
	db := &execRecorder{tag: pgconn.NewCommandTag("INSERT 0 0")}

	added, err := EnsureStaffRoles(context.Background(), db, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestEnsureStaffRolesReportsStoreFailure(t *testing.T) {
	db := &execRecorder{err: errors.New("relation \"staff_roles\" does not exist")}

	_, err := EnsureStaffRoles(context.Background(), db, zerolog.Nop())
	assert.ErrorContains(t, err, "failed to seed staff roles")
}

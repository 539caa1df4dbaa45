package db

import (
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsAreOrdered(t *testing.T) {
	goose.SetBaseFS(migrationsFS)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	migrations, err := goose.CollectMigrations("migrations", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, migrations, 3)
	for i, m := range migrations {
		assert.Equal(t, int64(i+1), m.Version)
	}
}

func TestMigrationsDeclareNamedConstraints(t *testing.T) {
	b, err := fs.ReadFile(migrationsFS, "migrations/00003_create_answers.sql")
	require.NoError(t, err)
	assert.Contains(t, string(b), "answers_question_id_fkey")
	assert.Contains(t, string(b), "answers_user_id_fkey")
	assert.NotContains(t, string(b), "CASCADE")
}

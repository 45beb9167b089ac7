package persistence

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionware/storefront/migrations"
)

func TestMigrationNamesSortedSQLOnly(t *testing.T) {
	files := fstest.MapFS{
		"010_late.sql": {Data: []byte("SELECT 1")},
		"001_init.sql": {Data: []byte("SELECT 1")},
		"README.md":    {Data: []byte("notes")},
		"002_more.sql": {Data: []byte("SELECT 1")},
		"nested/x.sql": {Data: []byte("SELECT 1")},
	}
	names, err := migrationNames(files)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_more.sql", "010_late.sql"}, names)
}

func TestEmbeddedMigrations(t *testing.T) {
	names, err := migrationNames(migrations.Files)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_ticket_history.sql"}, names)
}

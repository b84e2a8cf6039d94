package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@localhost:5432/uav?sslmode=disable", migrationURL("postgres://u:p@localhost:5432/uav?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/uav", migrationURL("postgresql://u@db/uav"))
	assert.Equal(t, "pgx5://u@db/uav", migrationURL("pgx5://u@db/uav"))
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())
	migrateFlag := serve.Flags().Lookup("migrate")
	require.NotNil(t, migrateFlag)
	assert.Equal(t, "true", migrateFlag.DefValue)

	up, _, err := root.Find([]string{"migrate", "up"})
	require.NoError(t, err)
	assert.Equal(t, "up", up.Name())

	down, _, err := root.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	assert.Equal(t, "down", down.Name())
}

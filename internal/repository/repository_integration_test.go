//go:build integration

package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB подключается к TEST_DATABASE_URL, накатывает миграции и очищает таблицы.
// Тест пропускается, если база недоступна.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("database unavailable: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("database unavailable: %v", err)
	}
	t.Cleanup(pool.Close)

	source, err := iofs.New(migrations.Files, ".")
	require.NoError(t, err)
	m, err := migrate.NewWithSourceInstance("iofs", source, strings.Replace(dsn, "postgres://", "pgx5://", 1))
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	_, err = pool.Exec(ctx, `TRUNCATE drones, missions, incidents, events, logs, users;`)
	require.NoError(t, err)
	return pool
}

func TestDroneRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewDroneRepository(pool)
	ctx := context.Background()

	active := &models.Drone{ID: models.NewID(), Name: "D1", Model: "M1", Status: models.StatusIdle, Battery: 80, Activate: true}
	inactive := &models.Drone{ID: models.NewID(), Name: "D2", Model: "M2", Status: models.StatusCharging, Battery: 10}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))
	assert.False(t, active.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "D1", got.Name)
	assert.Equal(t, 80, got.Battery)

	total, err := repo.Count(ctx, models.DroneFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	available, err := repo.Count(ctx, models.DroneFilter{OnlyActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), available)

	page, err := repo.List(ctx, models.DroneFilter{OnlyActive: true}, 5, 0)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, active.ID, page[0].ID)

	beyond, err := repo.List(ctx, models.DroneFilter{}, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	summary, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.StatusCount{{Status: "Charging", Count: 1}, {Status: "Idle", Count: 1}}, summary)

	got.Battery = 50
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.GetByID(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Battery)
	assert.Equal(t, "D1", updated.Name)

	require.NoError(t, repo.Delete(ctx, active.ID))
	_, err = repo.GetByID(ctx, active.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, active.ID), models.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, active), models.ErrNotFound)
}

func TestMissionRepository_DecimalAndTimestamps(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewMissionRepository(pool)
	ctx := context.Background()

	mission := &models.Mission{
		ID:        models.NewID(),
		UserID:    "u1",
		DroneID:   "missing-drone",
		TargetLat: decimal.RequireFromString("55.7522200"),
		TargetLng: decimal.RequireFromString("37.6155600"),
		Status:    models.StatusIdle,
	}
	require.NoError(t, repo.Create(ctx, mission))

	started := time.Now().UTC().Truncate(time.Microsecond)
	mission.StartedAt = &started
	mission.Status = models.StatusActive
	require.NoError(t, repo.Update(ctx, mission))

	got, err := repo.GetByID(ctx, mission.ID)
	require.NoError(t, err)
	assert.True(t, mission.TargetLat.Equal(got.TargetLat))
	assert.Equal(t, models.StatusActive, got.Status)
	require.NotNil(t, got.StartedAt)
	assert.True(t, started.Equal(*got.StartedAt))
	assert.Nil(t, got.CompletedAt)
}

func TestLogRepository_NewestFirst(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewLogRepository(pool)
	ctx := context.Background()

	for _, msg := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.Log{ID: models.NewID(), LogType: models.LogInfo, Message: msg}))
		time.Sleep(2 * time.Millisecond)
	}

	logs, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "third", logs[0].Message)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestUserRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	user := &models.User{ID: models.NewID(), Name: "alice", PasswordHash: "hash", Role: models.RoleAdmin}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, models.RoleAdmin, got.Role)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

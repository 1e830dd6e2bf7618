package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopgm/capcrash/internal/model"
)

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)

	require.NotNil(t, app.Storage)
	require.NotNil(t, app.RosterController)
	require.NotNil(t, app.AuthService)
	require.NotNil(t, app.CoachService)
	require.NotNil(t, app.AchievementsService)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "postgres"})
	assert.Error(t, err)
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestTestAppWiring(t *testing.T) {
	app := NewTestApp()

	assert.Equal(t, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), app.MockClock.Now())

	// The controller runs against the mocked dependencies end to end
	app.MockRandom.QueueString("GAME1")
	sess, err := app.RosterController.CreateSession(context.Background(), "a_test", model.DifficultyPro)
	require.NoError(t, err)
	assert.Equal(t, model.SessionID("GAME1"), sess.ID)
	assert.Equal(t, app.MockClock.Now(), sess.CreatedAt)
}

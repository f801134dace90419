package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janawaaz-be/models"
)

func testClient(chance float64) (*IntegrationClient, time.Time) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	c := NewIntegrationClient(
		WithClock(func() time.Time { return now }),
		WithChance(func() float64 { return chance }),
		WithLatency(0),
	)
	return c, now
}

// TestIntegrationList returns all portals, or just one ministry's.
func TestIntegrationList(t *testing.T) {
	c, _ := testClient(1)

	all := c.List("")
	assert.Len(t, all, 5)

	urban := c.List("urban_dev")
	require.Len(t, urban, 1)
	assert.Equal(t, "urban-portal", urban[0].ID)
}

// TestIntegrationSync bumps last-sync, marks connected and returns issues.
func TestIntegrationSync(t *testing.T) {
	c, now := testClient(1)

	issues, err := c.Sync("water-board")
	require.NoError(t, err)
	assert.Len(t, issues, 2)
	assert.Equal(t, "Water Resources Board", issues[0].Source)

	water := c.List("water")
	require.Len(t, water, 1)
	assert.Equal(t, models.IntegrationConnected, water[0].Status)
	assert.Equal(t, now, water[0].LastSync)
}

// TestIntegrationSync_UnknownID fails with not-found.
func TestIntegrationSync_UnknownID(t *testing.T) {
	c, _ := testClient(1)

	_, err := c.Sync("no-such-portal")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestIntegrationTestConnection_Deterministic drives both outcomes through the
// injected random source.
func TestIntegrationTestConnection_Deterministic(t *testing.T) {
	c, _ := testClient(0.9)
	ok, err := c.TestConnection("urban-portal")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.IntegrationConnected, c.List("urban_dev")[0].Status)

	c, _ = testClient(0.1)
	ok, err = c.TestConnection("urban-portal")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, models.IntegrationError, c.List("urban_dev")[0].Status)
}

// TestIntegrationTestConnection_UnknownID fails with not-found.
func TestIntegrationTestConnection_UnknownID(t *testing.T) {
	c, _ := testClient(1)

	_, err := c.TestConnection("no-such-portal")
	assert.ErrorIs(t, err, ErrNotFound)
}

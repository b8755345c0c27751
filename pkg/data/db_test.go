package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Store = &Postgres{}
	_ Store = &Memory{}
)

func TestMemorySaveAndList(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	clock := time.Date(2025, time.June, 21, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	newport := &Location{Name: "Newport", Lat: 41.4353, Lng: -71.4616, Station: 8452660}
	require.NoError(t, m.SaveLocation(ctx, newport))
	assert.Equal(t, uint(1), newport.ID)

	wellington := &Location{Name: "Wellington", Lat: -41.2865, Lng: 174.7762}
	require.NoError(t, m.SaveLocation(ctx, wellington))
	assert.Equal(t, uint(2), wellington.ID)

	locs, err := m.Locations(ctx, 0)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, "Wellington", locs[0].Name)
	assert.Equal(t, "Newport", locs[1].Name)

	// Updating moves a location to the front and keeps its creation time.
	created := newport.CreatedAt
	newport.Name = "Newport, RI"
	require.NoError(t, m.SaveLocation(ctx, newport))
	assert.Equal(t, uint(1), newport.ID)
	assert.Equal(t, created, newport.CreatedAt)

	locs, err = m.Locations(ctx, 1)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "Newport, RI", locs[0].Name)
}

func TestMemoryCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemory()
	assert.ErrorIs(t, m.SaveLocation(ctx, &Location{Name: "nowhere"}), context.Canceled)
	_, err := m.Locations(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "db",
		Port:     "5432",
		User:     "postgres",
		Password: "hunter2",
		Database: "tidedash",
		TimeZone: "UTC",
	}
	assert.Equal(t,
		"host=db user=postgres password=hunter2 dbname=tidedash port=5432 sslmode=disable TimeZone=UTC",
		cfg.dsn())
}

// Package data stores the locations visitors save.
package data

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Location is a named place a visitor asked for almanac data about. Station
// is the NOAA tide station closest to it, zero if none was chosen.
type Location struct {
	gorm.Model
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Station int     `json:"station,omitempty"`
}

// Store saves and lists locations.
type Store interface {
	// SaveLocation inserts loc, or updates it if loc.ID is set. loc.ID is
	// filled in on insert.
	SaveLocation(ctx context.Context, loc *Location) error
	// Locations lists saved locations, most recently updated first.
	Locations(ctx context.Context, limit int) ([]Location, error)
}

// PostgresConfig holds connection settings, normally read from PG* variables.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	TimeZone string
}

func (c PostgresConfig) dsn() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.Host,
		c.User,
		c.Password,
		c.Database,
		c.Port,
		c.TimeZone)
}

// Postgres is a Store backed by gorm.
type Postgres struct {
	db *gorm.DB
}

// NewPostgres connects and migrates the locations table.
func NewPostgres(cfg PostgresConfig) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&Location{}); err != nil {
		return nil, fmt.Errorf("failed to migrate locations: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) SaveLocation(ctx context.Context, loc *Location) error {
	if tx := p.db.WithContext(ctx).Save(loc); tx.Error != nil {
		return fmt.Errorf("failed to save location %q: %w", loc.Name, tx.Error)
	}
	return nil
}

func (p *Postgres) Locations(ctx context.Context, limit int) ([]Location, error) {
	var locs []Location
	tx := p.db.WithContext(ctx).Order("updated_at desc").Limit(limit).Find(&locs)
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to list locations: %w", tx.Error)
	}
	return locs, nil
}

// Memory is a Store that forgets everything on restart. It is used when no
// database is configured.
type Memory struct {
	mu     sync.Mutex
	nextID uint
	locs   map[uint]Location
	now    func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		locs: make(map[uint]Location),
		now:  time.Now,
	}
}

func (m *Memory) SaveLocation(ctx context.Context, loc *Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if loc.ID == 0 {
		m.nextID++
		loc.ID = m.nextID
		loc.CreatedAt = now
	} else if prev, ok := m.locs[loc.ID]; ok {
		loc.CreatedAt = prev.CreatedAt
	}
	loc.UpdatedAt = now
	m.locs[loc.ID] = *loc
	return nil
}

func (m *Memory) Locations(ctx context.Context, limit int) ([]Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	locs := make([]Location, 0, len(m.locs))
	for _, loc := range m.locs {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool {
		if locs[i].UpdatedAt.Equal(locs[j].UpdatedAt) {
			return locs[i].ID > locs[j].ID
		}
		return locs[i].UpdatedAt.After(locs[j].UpdatedAt)
	})
	if limit > 0 && len(locs) > limit {
		locs = locs[:limit]
	}
	return locs, nil
}

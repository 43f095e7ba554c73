// Package seed writes the initial content into an empty database.
//
// The Initializer guards the startup seed: concurrent callers share one
// in-flight run, a failed run can be retried, and a database that already
// holds products is never seeded again.
package seed

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/db"
	"github.com/earg-org/earg-api/internal/db/controller/product"
	"github.com/earg-org/earg-api/internal/db/controller/setting"
)

// State of an Initializer.
type State int

const (
	// Idle means no run is active and none succeeded yet.
	Idle State = iota
	// InProgress means a run is active; callers wait for its result.
	InProgress
	// Complete means a run succeeded; later calls return at once.
	Complete
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InProgress:
		return "in progress"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrDBNil is returned when the initializer has no database.
	ErrDBNil = errors.New("database connection is nil")
	// ErrPanic wraps a panic raised during initialization.
	ErrPanic = errors.New("initialization panicked")
)

// run is the handle of one in-flight initialization. Only the caller that
// created it may publish its result.
type run struct {
	done chan struct{}
	err  error
}

// Initializer migrates the schema and seeds an empty database once.
type Initializer struct {
	db   *gorm.DB
	data Dataset

	// initialize does the work of one run, replaced in tests.
	initialize func(ctx context.Context) error

	mu       sync.Mutex
	state    State
	inflight *run
}

// New returns an idle Initializer seeding data into db.
func New(gdb *gorm.DB, data Dataset) *Initializer {
	i := &Initializer{db: gdb, data: data}
	i.initialize = i.migrateAndSeed

	return i
}

// State returns the current state.
func (i *Initializer) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.state
}

// Run initializes the database with get-or-start semantics.
// When a run is already in flight Run waits for it and returns its result
// (or the context error); after a successful run it returns nil at once.
// A failed run resets the initializer to Idle so a later call can retry.
func (i *Initializer) Run(ctx context.Context) error {
	i.mu.Lock()

	switch i.state {
	case Complete:
		i.mu.Unlock()
		log.Debug().Msg("database already initialized")

		return nil
	case InProgress:
		r := i.inflight
		i.mu.Unlock()
		log.Info().Msg("initialization already in progress, waiting")

		select {
		case <-r.done:
			return r.err
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		}
	case Idle:
	}

	r := &run{done: make(chan struct{})}
	i.state = InProgress
	i.inflight = r
	i.mu.Unlock()

	i.execute(ctx, r)

	return r.err
}

// execute performs the run owned by r and publishes its result.
func (i *Initializer) execute(ctx context.Context, r *run) {
	defer func() {
		if p := recover(); p != nil {
			r.err = fmt.Errorf("%w: %v", ErrPanic, p)
		}

		i.mu.Lock()
		if r.err != nil {
			log.Error().Err(r.err).Msg("error initializing database")

			i.state = Idle
		} else {
			i.state = Complete
		}

		i.inflight = nil
		i.mu.Unlock()

		close(r.done)
	}()

	r.err = i.initialize(ctx)
}

func (i *Initializer) migrateAndSeed(ctx context.Context) error {
	if i.db == nil {
		return ErrDBNil
	}

	gdb := i.db.WithContext(ctx)

	log.Info().Msg("initializing database")

	if err := db.Migrate(gdb); err != nil {
		return err
	}

	log.Info().Msg("tables created or already exist")

	count, err := product.Count(gdb)
	if err != nil {
		return err
	}

	if count > 0 {
		log.Info().Int64("products", count).Msg("database already has products, skipping seed")
		return nil
	}

	log.Info().Msg("database is empty, seeding initial data")

	if err = gdb.Transaction(func(tx *gorm.DB) error {
		return insertContent(tx, i.data, setting.Skip)
	}); err != nil {
		return err
	}

	log.Info().Msg("database initialization complete")

	return nil
}

// insertContent writes the content tables and then the settings with the
// given conflict policy. The dataset is copied, generated ids never leak
// into it.
func insertContent(tx *gorm.DB, data Dataset, policy setting.ConflictPolicy) error {
	steps := []struct {
		name   string
		insert func() error
	}{
		{"gallery", func() error { return createAll(tx, data.Gallery) }},
		{"stories", func() error { return createAll(tx, data.Stories) }},
		{"team", func() error { return createAll(tx, data.Team) }},
		{"journey", func() error { return createAll(tx, data.Journey) }},
		{"programs", func() error { return createAll(tx, data.Programs) }},
	}

	for _, step := range steps {
		if err := step.insert(); err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.name, err)
		}

		log.Info().Str("table", step.name).Msg("seeded")
	}

	for _, entry := range data.Settings {
		if _, err := setting.Set(tx, entry.Key, entry.Value, policy); err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", entry.Key, err)
		}
	}

	log.Info().Int("keys", len(data.Settings)).Str("policy", policy.String()).Msg("settings seeded")

	return nil
}

func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	clone := slices.Clone(rows)

	return tx.Create(&clone).Error //nolint:wrapcheck
}

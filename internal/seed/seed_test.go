package seed

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/content"
	"github.com/earg-org/earg-api/internal/db/controller/setting"
	"github.com/earg-org/earg-api/internal/db/dbtest"
	"github.com/earg-org/earg-api/internal/db/models"
)

var errBoom = errors.New("boom")

// countCreates registers a gorm callback counting insert statements.
func countCreates(t *testing.T, db *gorm.DB) *atomic.Int64 {
	t.Helper()

	var n atomic.Int64

	err := db.Callback().Create().Before("gorm:create").Register("test:count_creates", func(*gorm.DB) {
		n.Add(1)
	})
	require.NoError(t, err)

	return &n
}

func count[T any](t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(new(T)).Count(&n).Error)

	return n
}

func TestRunSeedsEmptyDatabase(t *testing.T) {
	db := dbtest.Open(t)
	seeder := New(db, Default())

	require.NoError(t, seeder.Run(context.Background()))
	assert.Equal(t, Complete, seeder.State())

	assert.Equal(t, int64(7), count[models.Program](t, db))
	assert.Equal(t, int64(len(content.Keys())), count[models.Setting](t, db))
	assert.Zero(t, count[models.Product](t, db), "the startup seed never writes products")

	var categories []string
	found, err := setting.Load(db, content.KeyCategories, &categories)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"General"}, categories)

	program := models.Program{}
	require.NoError(t, db.Order("id").First(&program).Error)
	assert.Equal(t, []string{"Financial Literacy Training", "Digital Financial Tools", "Credit Access"}, []string(program.Features))

	creates := countCreates(t, db)
	require.NoError(t, seeder.Run(context.Background()))
	assert.Zero(t, creates.Load(), "a completed initializer does nothing")
}

func TestRunSkipsDatabaseWithProducts(t *testing.T) {
	db := dbtest.Open(t)

	for _, id := range []string{"p-1", "p-2", "p-3"} {
		require.NoError(t, db.Create(&models.Product{ID: id, Name: id}).Error)
	}

	creates := countCreates(t, db)
	seeder := New(db, Default())

	require.NoError(t, seeder.Run(context.Background()))
	assert.Equal(t, Complete, seeder.State())
	assert.Zero(t, creates.Load(), "zero insert statements")
	assert.Zero(t, count[models.Setting](t, db))
	assert.Zero(t, count[models.Program](t, db))
}

func TestRunKeepsAdminEdits(t *testing.T) {
	db := dbtest.Open(t)

	_, err := setting.Upsert(db, content.KeyCategories, []byte(`["Jewelry"]`), setting.Overwrite)
	require.NoError(t, err)

	require.NoError(t, New(db, Default()).Run(context.Background()))

	value, err := setting.Get(db, content.KeyCategories)
	require.NoError(t, err)
	assert.JSONEq(t, `["Jewelry"]`, string(value))
}

func TestRunConcurrentCallersShareOneRun(t *testing.T) {
	var (
		calls   atomic.Int64
		started = make(chan struct{})
		release = make(chan struct{})
	)

	seeder := New(nil, Dataset{})
	seeder.initialize = func(context.Context) error {
		calls.Add(1)
		close(started)
		<-release

		return nil
	}

	errs := make(chan error, 2)

	go func() { errs <- seeder.Run(context.Background()) }()

	<-started
	assert.Equal(t, InProgress, seeder.State())

	go func() { errs <- seeder.Run(context.Background()) }()

	// give the second caller time to attach to the in-flight run
	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-errs)
	require.NoError(t, <-errs)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, Complete, seeder.State())
}

func TestRunConcurrentOnDatabase(t *testing.T) {
	db := dbtest.Open(t)
	seeder := New(db, Default())

	var wg sync.WaitGroup

	errs := make([]error, 4)
	for n := range errs {
		wg.Add(1)

		go func() {
			defer wg.Done()
			errs[n] = seeder.Run(context.Background())
		}()
	}

	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, int64(7), count[models.Program](t, db), "exactly one seed sequence")
	assert.Equal(t, int64(len(content.Keys())), count[models.Setting](t, db))
}

func TestRunFailureAllowsRetry(t *testing.T) {
	var calls atomic.Int64

	seeder := New(nil, Dataset{})
	seeder.initialize = func(context.Context) error {
		if calls.Add(1) == 1 {
			return errBoom
		}

		return nil
	}

	require.ErrorIs(t, seeder.Run(context.Background()), errBoom)
	assert.Equal(t, Idle, seeder.State())

	require.NoError(t, seeder.Run(context.Background()))
	assert.Equal(t, Complete, seeder.State())
	assert.Equal(t, int64(2), calls.Load())
}

func TestRunWaitersReceiveFailure(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	seeder := New(nil, Dataset{})
	seeder.initialize = func(context.Context) error {
		close(started)
		<-release

		return errBoom
	}

	owner := make(chan error, 1)
	go func() { owner <- seeder.Run(context.Background()) }()

	<-started

	waiter := make(chan error, 1)
	go func() { waiter <- seeder.Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	close(release)

	require.ErrorIs(t, <-owner, errBoom)
	require.ErrorIs(t, <-waiter, errBoom)
	assert.Equal(t, Idle, seeder.State())
}

func TestRunWaiterContextCanceled(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	seeder := New(nil, Dataset{})
	seeder.initialize = func(context.Context) error {
		close(started)
		<-release

		return nil
	}

	owner := make(chan error, 1)
	go func() { owner <- seeder.Run(context.Background()) }()

	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, seeder.Run(ctx), context.Canceled)

	close(release)
	require.NoError(t, <-owner)
}

func TestRunPanicResetsState(t *testing.T) {
	seeder := New(nil, Dataset{})
	seeder.initialize = func(context.Context) error {
		panic("schema missing")
	}

	err := seeder.Run(context.Background())
	require.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "schema missing")
	assert.Equal(t, Idle, seeder.State())
}

func TestRunNilDatabase(t *testing.T) {
	seeder := New(nil, Default())

	require.ErrorIs(t, seeder.Run(context.Background()), ErrDBNil)
	assert.Equal(t, Idle, seeder.State())
}

func TestReset(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, New(db, Default()).Run(context.Background()))
	_, err := setting.Upsert(db, content.KeyCategories, []byte(`["Edited"]`), setting.Overwrite)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Message{Name: "a", Email: "a@b.c", Message: "hi"}).Error)

	data := Default()
	data.Products = []models.Product{
		{ID: "p-1", Name: "Kiondo basket", Price: 25},
		{ID: "p-2", Name: "Beaded necklace", Price: 8},
	}

	require.NoError(t, Reset(context.Background(), db, data))

	assert.Equal(t, int64(2), count[models.Product](t, db))
	assert.Equal(t, int64(7), count[models.Program](t, db))
	assert.Zero(t, count[models.Message](t, db))

	value, err := setting.Get(db, content.KeyCategories)
	require.NoError(t, err)
	assert.JSONEq(t, `["General"]`, string(value), "reset discards admin edits")

	require.ErrorIs(t, Reset(context.Background(), nil, data), ErrDBNil)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "complete", Complete.String())
	assert.Equal(t, "State(5)", State(5).String())
}

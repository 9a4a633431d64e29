package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testEntries() map[string]Entry {
	return map[string]Entry{
		"1": {Quantity: 2, Price: decimal.RequireFromString("10.00")},
		"7": {Quantity: 1, Price: decimal.RequireFromString("4.50")},
	}
}

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&CartSession{}))
	return NewGormStore(db)
}

func TestGormStoreRoundTrip(t *testing.T) {
	store := newTestGormStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", testEntries()))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got["1"].Quantity)
	assert.True(t, got["1"].Price.Equal(decimal.RequireFromString("10.00")))
}

func TestGormStoreOverwrite(t *testing.T) {
	store := newTestGormStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", testEntries()))
	require.NoError(t, store.Set(ctx, "s1", map[string]Entry{
		"1": {Quantity: 9, Price: decimal.RequireFromString("10.00")},
	}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 9, got["1"].Quantity)
}

func TestGormStoreMissingSession(t *testing.T) {
	store := newTestGormStore(t)

	got, err := store.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGormStoreDelete(t *testing.T) {
	store := newTestGormStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", testEntries()))
	require.NoError(t, store.Delete(ctx, "s1"))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreIsolatesSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", testEntries()))

	got, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreCopiesOnWrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	entries := testEntries()
	require.NoError(t, store.Set(ctx, "a", entries))

	// Mutating the caller's map after Set must not leak into the store.
	entries["1"] = Entry{Quantity: 99, Price: decimal.Zero}

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, got["1"].Quantity)
}

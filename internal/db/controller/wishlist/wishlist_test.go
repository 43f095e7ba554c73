package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earg-org/earg-api/internal/db/dbtest"
	"github.com/earg-org/earg-api/internal/db/models"
)

func TestWishlist(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, db.Create(&models.Product{
		ID:       "p-1",
		Name:     "Sisal bag",
		Price:    15,
		Category: "Handmade Crafts",
		Stock:    2,
		Images:   []string{"https://cdn.example.org/bag.jpg"},
	}).Error)

	_, err := Add(db, "", "p-1")
	require.ErrorIs(t, err, ErrSessionEmpty)

	item, err := Add(db, "guest-1", "p-1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.NotZero(t, item.ID)

	again, err := Add(db, "guest-1", "p-1")
	require.NoError(t, err)
	assert.Nil(t, again, "duplicate is skipped")

	_, err = Add(db, "guest-2", "p-1")
	require.NoError(t, err)

	entries, err := List(db, "guest-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Sisal bag", entries[0].Name)
	assert.Equal(t, []string{"https://cdn.example.org/bag.jpg"}, []string(entries[0].Images))

	empty, err := List(db, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, Delete(db, item.ID))

	entries, err = List(db, "guest-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

package product

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/earg-org/earg-api/internal/db/controller/collection"
	"github.com/earg-org/earg-api/internal/db/dbtest"
	"github.com/earg-org/earg-api/internal/db/models"
)

func TestNewID(t *testing.T) {
	now := time.UnixMilli(1718000000123)

	id := NewID(now)
	assert.Regexp(t, regexp.MustCompile(`^p-1718000000123-\d{1,3}$`), id)
}

func TestLifecycle(t *testing.T) {
	db := dbtest.Open(t)

	p := &models.Product{
		Name:     "Kiondo basket",
		Price:    25.5,
		Category: "Handmade Crafts",
		Stock:    4,
		Images:   []string{"https://cdn.example.org/kiondo.jpg"},
		Story:    datatypes.JSON(`{"title":"Woven in Chuka"}`),
	}
	require.NoError(t, Create(db, p))
	assert.Regexp(t, `^p-\d+-\d+$`, p.ID)

	withID := &models.Product{ID: "p-fixed", Name: "Beaded necklace", Price: 8}
	require.NoError(t, Create(db, withID))
	assert.Equal(t, "p-fixed", withID.ID)

	n, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := Get(db, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.org/kiondo.jpg"}, []string(got.Images))
	assert.JSONEq(t, `{"title":"Woven in Chuka"}`, string(got.Story))

	offer := 20.0
	updated, err := Update(db, p.ID, &models.Product{Name: "Kiondo basket (large)", Price: 30, OfferPrice: &offer, Category: "Handmade Crafts"})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	require.NotNil(t, updated.OfferPrice)
	assert.InDelta(t, 20.0, *updated.OfferPrice, 0.001)
	assert.Zero(t, updated.Stock)

	_, err = Update(db, "p-missing", &models.Product{Name: "x"})
	require.ErrorIs(t, err, collection.ErrNotFound)

	require.NoError(t, db.Create(&models.WishlistItem{SessionID: "s1", ProductID: p.ID}).Error)
	require.NoError(t, Delete(db, p.ID))

	_, err = Get(db, p.ID)
	require.ErrorIs(t, err, collection.ErrNotFound)

	var wishlistRows int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Count(&wishlistRows).Error)
	assert.Zero(t, wishlistRows)
}

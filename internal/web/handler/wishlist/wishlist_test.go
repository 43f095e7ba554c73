package wishlist

import (
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earg-org/earg-api/internal/db/models"
	"github.com/earg-org/earg-api/internal/web/handler/handlertest"
)

type listResponse struct {
	Message string                 `json:"message"`
	Data    []models.WishlistEntry `json:"data"`
}

type addResponse struct {
	Message string               `json:"message"`
	Data    *models.WishlistItem `json:"data"`
}

func TestWishlist(t *testing.T) {
	env := handlertest.New(t, &Service{})

	require.NoError(t, env.DB.Create(&models.Product{ID: "p-1", Name: "Kiondo basket", Price: 25, Stock: 2}).Error)

	status, body := env.Do(t, fiber.MethodGet, "/api/wishlist/guest-1", nil)
	require.Equal(t, fiber.StatusOK, status)

	list := handlertest.Decode[listResponse](t, body)
	assert.Equal(t, "success", list.Message)
	assert.NotNil(t, list.Data)
	assert.Empty(t, list.Data)

	status, body = env.Do(t, fiber.MethodPost, "/api/wishlist", map[string]string{"session_id": "guest-1", "product_id": "p-1"})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	added := handlertest.Decode[addResponse](t, body)
	require.NotNil(t, added.Data)
	assert.Equal(t, "p-1", added.Data.ProductID)

	status, body = env.Do(t, fiber.MethodPost, "/api/wishlist", map[string]string{"session_id": "guest-1", "product_id": "p-1"})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Nil(t, handlertest.Decode[addResponse](t, body).Data, "duplicate stores nothing")

	_, body = env.Do(t, fiber.MethodGet, "/api/wishlist/guest-1", nil)
	list = handlertest.Decode[listResponse](t, body)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Kiondo basket", list.Data[0].Name)

	_, body = env.Do(t, fiber.MethodGet, "/api/wishlist/guest-2", nil)
	assert.Empty(t, handlertest.Decode[listResponse](t, body).Data)

	status, body = env.Do(t, fiber.MethodDelete, "/api/wishlist/1", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"success"}`, string(body))

	_, body = env.Do(t, fiber.MethodGet, "/api/wishlist/guest-1", nil)
	assert.Empty(t, handlertest.Decode[listResponse](t, body).Data)
}

func TestAddRequiresIDs(t *testing.T) {
	env := handlertest.New(t, &Service{})

	status, _ := env.Do(t, fiber.MethodPost, "/api/wishlist", map[string]string{"session_id": "guest-1"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

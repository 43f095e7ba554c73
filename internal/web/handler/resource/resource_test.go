package resource

import (
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earg-org/earg-api/internal/db/models"
	"github.com/earg-org/earg-api/internal/web/handler/handlertest"
)

func TestGallery(t *testing.T) {
	env := handlertest.New(t, &Service{})

	status, body := env.Do(t, fiber.MethodGet, "/api/gallery", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	status, body = env.Do(t, fiber.MethodPost, "/api/gallery", map[string]any{
		"id": 99, "url": "https://cdn.example.org/g.jpg", "caption": "Graduation day",
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	item := handlertest.Decode[models.GalleryItem](t, body)
	assert.NotEqual(t, uint64(99), item.ID, "client ids are ignored")
	assert.Equal(t, "Graduation day", item.Caption)

	status, _ = env.Do(t, fiber.MethodPut, "/api/gallery/1", map[string]any{"caption": "x"})
	assert.Equal(t, fiber.StatusMethodNotAllowed, status)

	status, body = env.Do(t, fiber.MethodDelete, "/api/gallery/1", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"Deleted"}`, string(body))

	_, body = env.Do(t, fiber.MethodGet, "/api/gallery", nil)
	assert.JSONEq(t, `[]`, string(body))
}

func TestStoriesUpdate(t *testing.T) {
	env := handlertest.New(t, &Service{})

	_, body := env.Do(t, fiber.MethodPost, "/api/stories", map[string]any{
		"name": "Mercy", "role": "Student", "quote": "I can read now", "featured": true,
	})
	story := handlertest.Decode[models.Story](t, body)

	status, body := env.Do(t, fiber.MethodPut, "/api/stories/1", map[string]any{
		"name": "Mercy K.", "role": "Graduate", "quote": "I teach now", "featured": false,
	})
	require.Equal(t, fiber.StatusOK, status, string(body))

	updated := handlertest.Decode[models.Story](t, body)
	assert.Equal(t, story.ID, updated.ID)
	assert.Equal(t, "Graduate", updated.Role)
	assert.False(t, updated.Featured)

	status, body = env.Do(t, fiber.MethodPut, "/api/stories/42", map[string]any{"name": "x"})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Story not found"}`, string(body))

	status, _ = env.Do(t, fiber.MethodPut, "/api/stories/abc", map[string]any{"name": "x"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestJourneyNewestFirst(t *testing.T) {
	env := handlertest.New(t, &Service{})

	for _, year := range []string{"2019", "2021", "2024"} {
		status, _ := env.Do(t, fiber.MethodPost, "/api/journey", map[string]any{"year": year, "title": "Milestone " + year})
		require.Equal(t, fiber.StatusCreated, status)
	}

	_, body := env.Do(t, fiber.MethodGet, "/api/journey", nil)
	journey := handlertest.Decode[[]models.Milestone](t, body)
	require.Len(t, journey, 3)
	assert.Equal(t, "2024", journey[0].Year)
	assert.Equal(t, "2019", journey[2].Year)
}

func TestProgramsFeatures(t *testing.T) {
	env := handlertest.New(t, &Service{})

	status, body := env.Do(t, fiber.MethodPost, "/api/programs", map[string]any{
		"title": "Menstrual Health", "features": []string{"Product Availability", "Health Education"},
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	status, body = env.Do(t, fiber.MethodPost, "/api/programs", map[string]any{"title": "No features"})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	assert.Empty(t, handlertest.Decode[models.Program](t, body).Features)

	_, body = env.Do(t, fiber.MethodGet, "/api/programs", nil)
	programs := handlertest.Decode[[]models.Program](t, body)
	require.Len(t, programs, 2)
	assert.Equal(t, []string{"Product Availability", "Health Education"}, []string(programs[0].Features))
}

func TestTeamDeleteMissing(t *testing.T) {
	env := handlertest.New(t, &Service{})

	status, _ := env.Do(t, fiber.MethodDelete, "/api/team/7", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

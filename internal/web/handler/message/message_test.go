package message

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earg-org/earg-api/internal/db/models"
	"github.com/earg-org/earg-api/internal/web/handler/handlertest"
)

func TestCreate(t *testing.T) {
	testCases := []struct {
		name     string
		body     map[string]any
		status   int
		expected []string
	}{
		{
			name:   "valid message",
			body:   map[string]any{"name": "Wanjiru", "email": "wanjiru@example.org", "message": "How can I volunteer?"},
			status: fiber.StatusCreated,
		},
		{
			name:     "everything missing",
			body:     map[string]any{},
			status:   fiber.StatusBadRequest,
			expected: []string{"Name is required", "Valid email is required", "Message is required"},
		},
		{
			name:     "bad email and long name",
			body:     map[string]any{"name": strings.Repeat("a", 101), "email": "not-an-email", "message": "hi"},
			status:   fiber.StatusBadRequest,
			expected: []string{"Name is too long", "Valid email is required"},
		},
		{
			name:     "message too long",
			body:     map[string]any{"name": "A", "email": "a@b.org", "message": strings.Repeat("x", 5001)},
			status:   fiber.StatusBadRequest,
			expected: []string{"Message is too long (max 5000 characters)"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := handlertest.New(t, &Service{})

			status, body := env.Do(t, fiber.MethodPost, "/api/messages", tc.body)
			require.Equal(t, tc.status, status, string(body))

			if tc.expected != nil {
				resp := handlertest.Decode[map[string]any](t, body)
				assert.Equal(t, "Validation failed", resp["error"])
				assert.ElementsMatch(t, tc.expected, resp["errors"])

				return
			}

			m := handlertest.Decode[models.Message](t, body)
			assert.NotZero(t, m.ID)
			assert.False(t, m.Read)
		})
	}
}

func TestCreateEscapesText(t *testing.T) {
	env := handlertest.New(t, &Service{})

	status, body := env.Do(t, fiber.MethodPost, "/api/messages", map[string]any{
		"name": "<b>Eve</b>", "email": "eve@example.org", "message": `<script>alert("x")</script>`,
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	m := handlertest.Decode[models.Message](t, body)
	assert.Equal(t, "&lt;b&gt;Eve&lt;&#x2F;b&gt;", m.Name)
	assert.NotContains(t, m.Message, "<script>")
}

func TestReadAndDelete(t *testing.T) {
	env := handlertest.New(t, &Service{})

	for _, name := range []string{"First", "Second"} {
		status, _ := env.Do(t, fiber.MethodPost, "/api/messages", map[string]any{
			"name": name, "email": "a@b.org", "message": "hello",
		})
		require.Equal(t, fiber.StatusCreated, status)
	}

	_, body := env.Do(t, fiber.MethodGet, "/api/messages", nil)
	list := handlertest.Decode[[]models.Message](t, body)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Name, "newest first")

	status, body := env.Do(t, fiber.MethodPut, "/api/messages/1/read", map[string]any{"read": true})
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.True(t, handlertest.Decode[models.Message](t, body).Read)

	status, _ = env.Do(t, fiber.MethodPut, "/api/messages/9/read", map[string]any{"read": true})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = env.Do(t, fiber.MethodDelete, "/api/messages/1", nil)
	require.Equal(t, fiber.StatusOK, status)

	_, body = env.Do(t, fiber.MethodGet, "/api/messages", nil)
	assert.Len(t, handlertest.Decode[[]models.Message](t, body), 1)
}

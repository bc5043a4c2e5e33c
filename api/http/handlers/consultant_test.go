package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchboard/pkg/consultant"
)

func TestRequireSelfOrAdmin(t *testing.T) {
	me := consultant.Consultant{ID: uuid.New(), Name: "Dev", Email: "dev@corp.test"}
	other := consultant.Consultant{ID: uuid.New(), Name: "Peer", Email: "peer@corp.test"}
	h := NewConsultantHandler(newStubConsultants(me, other))

	app := fiber.New()
	// Stand-in for the JWT middleware: claims come from request headers.
	app.Post("/consultants/:id/attendance", func(c *fiber.Ctx) error {
		c.Locals("email", c.Get("X-Email"))
		if c.Get("X-Admin") == "1" {
			c.Locals("isAdmin", true)
		}
		return c.Next()
	}, h.RequireSelfOrAdmin(), h.MarkAttendance)

	do := func(t *testing.T, id, email, admin string) int {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/consultants/"+id+"/attendance", strings.NewReader(`{"hours":2}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Email", email)
		if admin != "" {
			req.Header.Set("X-Admin", admin)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	t.Run("own record passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(t, me.ID.String(), me.Email, ""))
	})

	t.Run("someone else's record is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do(t, other.ID.String(), me.Email, ""))
	})

	t.Run("unknown account is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do(t, me.ID.String(), "ghost@corp.test", ""))
	})

	t.Run("admin passes for any record", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(t, other.ID.String(), "admin@corp.test", "1"))
	})

	t.Run("bad id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(t, "not-a-uuid", me.Email, ""))
	})
}

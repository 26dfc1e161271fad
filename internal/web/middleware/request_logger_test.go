package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	l, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(l.WithField("from", "web")))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	entry := hook.LastEntry()
	require.Equal(t, "http", entry.Message)
	require.Equal(t, "/ok", entry.Data["path"])
	require.Equal(t, http.StatusNoContent, entry.Data["status"])
	require.NotEmpty(t, entry.Data["request_id"])

	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, hook.LastEntry().Data["status"])
}

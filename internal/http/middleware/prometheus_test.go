package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromApp(t *testing.T) (*PrometheusMiddleware, *fiber.App) {
	t.Helper()

	// Fresh registry per test to avoid duplicate registration.
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	return m, app
}

func TestPrometheusMiddleware(t *testing.T) {
	m, app := newPromApp(t)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Delete("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/test", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/test", "200")))

	respDelete, _ := app.Test(httptest.NewRequest("DELETE", "/test", nil))
	assert.Equal(t, fiber.StatusOK, respDelete.StatusCode)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("DELETE", "/test", "200")))

	app.Test(httptest.NewRequest("GET", "/error", nil))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/error", "400")))

	assert.NotZero(t, testutil.CollectAndCount(m.requestDuration))
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	m, app := newPromApp(t)

	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Test(httptest.NewRequest("GET", "/metrics", nil))

	assert.Zero(t, testutil.CollectAndCount(m.requestCount))
	assert.Zero(t, testutil.CollectAndCount(m.requestDuration))
}

func TestPrometheusMiddleware_PathPattern(t *testing.T) {
	m, app := newPromApp(t)

	app.Get("/admin/product/:id/custom-attributes", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Test(httptest.NewRequest("GET", "/admin/product/prod_123/custom-attributes", nil))

	// The route pattern, not the concrete product id, is the path label.
	count := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/admin/product/:id/custom-attributes", "200"))
	assert.Equal(t, float64(1), count)
}

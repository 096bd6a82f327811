package router

import (
	"net/http"
	"testing"

	"auth-backend/internal/cache"
	"auth-backend/internal/database"
	"auth-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	ts := service.NewTokenService("access-secret", "refresh-secret")
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, ts)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /health",
		http.MethodPost + " /api/register",
		http.MethodPost + " /api/login",
		http.MethodPost + " /api/refresh-token",
		http.MethodGet + " /api/users",
		http.MethodPut + " /api/users/:id",
		http.MethodGet + " /api/protected",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

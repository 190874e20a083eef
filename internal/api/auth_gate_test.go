package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMutatingRoutesRequireSession(t *testing.T) {
	app, _ := newTestApp(t)

	routes := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/schedule"},
		{http.MethodPost, "/api/constraints"},
		{http.MethodPost, "/api/team"},
		{http.MethodPost, "/api/team/seed"},
		{http.MethodDelete, "/api/team/1"},
		{http.MethodPost, "/api/week"},
	}

	for _, route := range routes {
		request := httptest.NewRequest(route.method, route.target, nil)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("%s %s failed: %v", route.method, route.target, err)
		}
		response.Body.Close()

		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without a session, got %d", route.method, route.target, response.StatusCode)
		}
	}
}

func TestReadOnlyRoutesStayPublic(t *testing.T) {
	app, _ := newTestApp(t)

	targets := []string{
		"/healthz",
		"/api/schedule?start=2026-03-01&end=2026-03-07",
		"/api/constraints?start=2026-03-01&end=2026-03-07",
		"/api/team",
		"/api/scores",
		"/api/status/current",
		"/api/cleaning/current",
		"/api/week?start=2026-03-01",
	}

	for _, target := range targets {
		request := httptest.NewRequest(http.MethodGet, target, nil)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("GET %s failed: %v", target, err)
		}
		response.Body.Close()

		if response.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200 without a session, got %d", target, response.StatusCode)
		}
	}
}

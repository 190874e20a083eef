package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mishmeret-app/mishmeret/internal/models"
)

func TestSeedTeamIsIdempotent(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginTestEditor(t, app)

	seedRequest := jsonRequest(t, http.MethodPost, "/api/team/seed", nil)
	seedRequest.AddCookie(cookie)
	response, err := app.Test(seedRequest, -1)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	var seedBody struct {
		Message string `json:"message"`
		Count   int64  `json:"count"`
	}
	decodeJSONBody(t, response, &seedBody)
	if seedBody.Count == 0 {
		t.Fatal("expected seeded members")
	}
	firstCount := seedBody.Count

	repeatRequest := jsonRequest(t, http.MethodPost, "/api/team/seed", nil)
	repeatRequest.AddCookie(cookie)
	response, err = app.Test(repeatRequest, -1)
	if err != nil {
		t.Fatalf("repeat seed failed: %v", err)
	}
	decodeJSONBody(t, response, &seedBody)
	if seedBody.Count != firstCount {
		t.Fatalf("repeat seed changed the roster: %d -> %d", firstCount, seedBody.Count)
	}

	listRequest := httptest.NewRequest(http.MethodGet, "/api/team", nil)
	listResponse, err := app.Test(listRequest, -1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var members []models.TeamMember
	decodeJSONBody(t, listResponse, &members)
	if int64(len(members)) != firstCount {
		t.Fatalf("expected %d members, got %d", firstCount, len(members))
	}
}

func TestTeamMemberLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginTestEditor(t, app)

	createRequest := jsonRequest(t, http.MethodPost, "/api/team", map[string]any{
		"name":  "זמר",
		"type":  models.CategoryRegular,
		"order": 1,
	})
	createRequest.AddCookie(cookie)
	response, err := app.Test(createRequest, -1)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	var created models.TeamMember
	decodeJSONBody(t, response, &created)
	if created.ID == 0 || !created.Active {
		t.Fatalf("unexpected created member %+v", created)
	}

	updateRequest := jsonRequest(t, http.MethodPost, "/api/team", map[string]any{
		"id":    created.ID,
		"name":  "זמר ב",
		"type":  models.CategoryReserve,
		"order": 5,
	})
	updateRequest.AddCookie(cookie)
	response, err = app.Test(updateRequest, -1)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	var updated models.TeamMember
	decodeJSONBody(t, response, &updated)
	if updated.ID != created.ID || updated.Name != "זמר ב" || updated.Category != models.CategoryReserve {
		t.Fatalf("unexpected updated member %+v", updated)
	}

	deleteRequest := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/team/%d", created.ID), nil)
	deleteRequest.AddCookie(cookie)
	response, err = app.Test(deleteRequest, -1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	var deleteBody struct {
		Success bool `json:"success"`
	}
	decodeJSONBody(t, response, &deleteBody)
	if !deleteBody.Success {
		t.Fatal("expected delete success")
	}

	listRequest := httptest.NewRequest(http.MethodGet, "/api/team", nil)
	listResponse, err := app.Test(listRequest, -1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var members []models.TeamMember
	decodeJSONBody(t, listResponse, &members)
	if len(members) != 0 {
		t.Fatalf("soft-deleted member still listed: %v", members)
	}
}

func TestTeamValidationErrors(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginTestEditor(t, app)

	tests := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{"blank name", map[string]any{"name": "   "}, http.StatusBadRequest},
		{"unknown category", map[string]any{"name": "זמר", "type": "contractor"}, http.StatusBadRequest},
		{"missing member", map[string]any{"id": 999, "name": "זמר"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := jsonRequest(t, http.MethodPost, "/api/team", tt.payload)
			request.AddCookie(cookie)
			response, err := app.Test(request, -1)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			response.Body.Close()

			if response.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, response.StatusCode)
			}
		})
	}

	listRequest := httptest.NewRequest(http.MethodGet, "/api/team?category=contractor", nil)
	listResponse, err := app.Test(listRequest, -1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	listResponse.Body.Close()
	if listResponse.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category filter, got %d", listResponse.StatusCode)
	}

	deleteRequest := httptest.NewRequest(http.MethodDelete, "/api/team/999", nil)
	deleteRequest.AddCookie(cookie)
	deleteResponse, err := app.Test(deleteRequest, -1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	deleteResponse.Body.Close()
	if deleteResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing member, got %d", deleteResponse.StatusCode)
	}

	badIDRequest := httptest.NewRequest(http.MethodDelete, "/api/team/abc", nil)
	badIDRequest.AddCookie(cookie)
	badIDResponse, err := app.Test(badIDRequest, -1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	badIDResponse.Body.Close()
	if badIDResponse.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", badIDResponse.StatusCode)
	}
}

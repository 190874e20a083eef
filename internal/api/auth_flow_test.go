package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginSetsSessionCookie(t *testing.T) {
	app, _ := newTestApp(t)

	cookie := loginTestEditor(t, app)
	if !cookie.HttpOnly {
		t.Fatal("expected HttpOnly session cookie")
	}
	if cookie.Secure {
		t.Fatal("expected Secure=false when cookie security is disabled")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
}

func TestLoginRejectsInvalidCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": testEditorUsername,
		"password": "wrong",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", response.StatusCode)
	}
	if responseCookie(response.Cookies(), sessionCookieName) != nil {
		t.Fatal("failed login must not set a session cookie")
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	app, _ := newTestApp(t)

	for _, payload := range []map[string]string{
		{"username": "", "password": "admin123"},
		{"username": "admin", "password": ""},
	} {
		request := jsonRequest(t, http.MethodPost, "/api/auth/login", payload)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("login request failed: %v", err)
		}
		response.Body.Close()

		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", payload, response.StatusCode)
		}
	}
}

func TestSessionReflectsAuthenticationState(t *testing.T) {
	app, _ := newTestApp(t)

	anonymous := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	response, err := app.Test(anonymous, -1)
	if err != nil {
		t.Fatalf("session request failed: %v", err)
	}
	var anonymousBody struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeJSONBody(t, response, &anonymousBody)
	if anonymousBody.Authenticated {
		t.Fatal("expected unauthenticated session without a cookie")
	}

	cookie := loginTestEditor(t, app)
	authenticated := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	authenticated.AddCookie(cookie)
	response, err = app.Test(authenticated, -1)
	if err != nil {
		t.Fatalf("session request failed: %v", err)
	}
	var sessionBody struct {
		Authenticated bool   `json:"authenticated"`
		Username      string `json:"username"`
	}
	decodeJSONBody(t, response, &sessionBody)
	if !sessionBody.Authenticated || sessionBody.Username != testEditorUsername {
		t.Fatalf("unexpected session body %+v", sessionBody)
	}
}

func TestSessionAcceptsBearerToken(t *testing.T) {
	app, _ := newTestApp(t)

	cookie := loginTestEditor(t, app)
	request := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	request.Header.Set("Authorization", "Bearer "+cookie.Value)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("session request failed: %v", err)
	}
	var body struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeJSONBody(t, response, &body)
	if !body.Authenticated {
		t.Fatal("expected bearer token to authenticate")
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	app, _ := newTestApp(t)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	defer response.Body.Close()

	cookie := responseCookie(response.Cookies(), sessionCookieName)
	if cookie == nil {
		t.Fatal("expected logout to rewrite the session cookie")
	}
	if cookie.Value != "" {
		t.Fatalf("expected cleared cookie value, got %q", cookie.Value)
	}
}

func TestTamperedTokenIsRejected(t *testing.T) {
	app, _ := newTestApp(t)

	cookie := loginTestEditor(t, app)
	request := jsonRequest(t, http.MethodPost, "/api/team", map[string]any{"name": "זמר"})
	request.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie.Value + "x"})

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for tampered token, got %d", response.StatusCode)
	}
}

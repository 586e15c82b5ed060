package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterLoginMe(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Budi",
		"email":    "budi@resto.test",
		"password": "secret123",
		"role":     "cashier",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d (body: %s)", w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "budi@resto.test",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d (body: %s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned empty token")
	}

	w = doRequest(t, r, http.MethodGet, "/api/auth/me", data.Token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("me status = %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)

	doRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Budi",
		"email":    "budi@resto.test",
		"password": "secret123",
		"role":     "cashier",
	})

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "budi@resto.test",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	w = doRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Budi Again",
		"email":    "budi@resto.test",
		"password": "secret123",
		"role":     "cashier",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", w.Code)
	}
}

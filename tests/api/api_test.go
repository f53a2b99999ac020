//go:build api

// End-to-end flow against a running instance. Start the service (and its
// postgres) first, then: go test -tags api ./tests/api/
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseURL = getEnv("API_BASE_URL", "http://localhost:8080")

func TestAPI_CustomerFlow(t *testing.T) {
	waitForService(t)

	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
	var token string

	t.Run("RegisterWithPlan", func(t *testing.T) {
		resp := post(t, "/api/v1/auth/register", "", map[string]any{
			"email":    email,
			"password": "secret123",
			"plan_id":  2,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				ID         string `json:"id"`
				Role       string `json:"role"`
				Membership struct {
					Status string `json:"status"`
					Type   string `json:"type"`
				} `json:"membership"`
			} `json:"data"`
		}
		decodeJSON(t, resp, &body)
		assert.True(t, body.Success)
		assert.Equal(t, "customer", body.Data.Role)
		assert.Equal(t, "active", body.Data.Membership.Status)
		assert.Equal(t, "monthly", body.Data.Membership.Type)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		resp := post(t, "/api/v1/auth/register", "", map[string]any{
			"email":    email,
			"password": "secret123",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Login", func(t *testing.T) {
		resp := post(t, "/api/v1/auth/login", "", map[string]any{
			"email":    email,
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		decodeJSON(t, resp, &body)
		require.NotEmpty(t, body.Data.Token)
		token = body.Data.Token
	})

	t.Run("WrongPasswordRejected", func(t *testing.T) {
		resp := post(t, "/api/v1/auth/login", "", map[string]any{
			"email":    email,
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("PlanCatalogIsPublic", func(t *testing.T) {
		resp := get(t, "/api/v1/memberships/plans", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data []struct {
				Name         string `json:"name"`
				DurationDays int    `json:"duration_days"`
			} `json:"data"`
		}
		decodeJSON(t, resp, &body)
		assert.Len(t, body.Data, 3)
	})

	t.Run("MembershipStatus", func(t *testing.T) {
		resp := get(t, "/api/v1/users/me/membership", token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data struct {
				Status  string `json:"status"`
				EndDate string `json:"end_date"`
			} `json:"data"`
		}
		decodeJSON(t, resp, &body)
		assert.Equal(t, "active", body.Data.Status)
		assert.NotEmpty(t, body.Data.EndDate)
	})

	t.Run("RenewStacks", func(t *testing.T) {
		before := membershipEndDate(t, token)

		resp := post(t, "/api/v1/users/me/membership/renew", token, map[string]any{"plan_id": 2})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		after := membershipEndDate(t, token)
		assert.True(t, after.After(before), "renewal must extend the end date")
	})

	t.Run("CancelKeepsAccessWindow", func(t *testing.T) {
		before := membershipEndDate(t, token)

		resp := post(t, "/api/v1/users/me/membership/cancel", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data struct {
				Status  string    `json:"status"`
				EndDate time.Time `json:"end_date"`
			} `json:"data"`
		}
		decodeJSON(t, resp, &body)
		assert.Equal(t, "cancelled", body.Data.Status)
		assert.WithinDuration(t, before, body.Data.EndDate, time.Second)
	})

	t.Run("BookingsRequireAuth", func(t *testing.T) {
		resp := get(t, "/api/v1/bookings/me", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

// --- Helpers ---

func waitForService(t *testing.T) {
	for i := 0; i < 30; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(time.Second)
	}
	t.Fatal("service did not become ready in time")
}

func membershipEndDate(t *testing.T, token string) time.Time {
	resp := get(t, "/api/v1/users/me/membership", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			EndDate time.Time `json:"end_date"`
		} `json:"data"`
	}
	decodeJSON(t, resp, &body)
	return body.Data.EndDate
}

func get(t *testing.T, path, token string) *http.Response {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func post(t *testing.T, path, token string, body any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(http.MethodPost, baseURL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, target any) {
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

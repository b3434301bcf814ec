package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"flowa-be/internal/bootstrap"
	"flowa-be/internal/config"
	"flowa-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Environment:        "test",
			ActivityLogPath:    filepath.Join(t.TempDir(), "activity.log"),
			CorsAllowedOrigins: "http://localhost:3000",
			Storage:            "memory",
			EventTransport:     "channel",
		},
		Auth: config.AuthConfig{TokenTTL: time.Hour},
		Generation: config.GenerationConfig{
			DefaultModel:         "openai",
			DefaultTemperature:   0.7,
			DefaultMaxTokens:     1000,
			DefaultContentLength: 500,
			MaxBatchCount:        5,
		},
	}

	container, err := bootstrap.NewContainer(cfg, nil, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(container.Close)

	return New(cfg, container).GetApp()
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

type idOnly struct {
	Id string `json:"id"`
}

func register(t *testing.T, app *fiber.App, role string) string {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/api/users/register", "", map[string]string{
		"name":     "Test " + role,
		"email":    uuid.NewString() + "@example.com",
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	return decode[struct {
		Token string `json:"token"`
	}](t, env).Token
}

func TestContentWorkflow(t *testing.T) {
	app := newTestApp(t)
	manager := register(t, app, "brand_manager")

	status, env := call(t, app, http.MethodPost, "/api/brands", manager, map[string]interface{}{
		"name":        "Flowa Coffee",
		"description": "Specialty roaster",
		"hashtags":    []string{"#flowacoffee"},
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	brandId := decode[idOnly](t, env).Id

	status, env = call(t, app, http.MethodPost, "/api/themes", manager, map[string]interface{}{
		"brandId":  brandId,
		"name":     "Morning",
		"category": "knowledge",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	themeId := decode[idOnly](t, env).Id

	status, env = call(t, app, http.MethodPost, "/api/chat", manager, map[string]interface{}{"brandId": brandId})
	require.Equal(t, http.StatusCreated, status, env.Message)
	chatId := decode[idOnly](t, env).Id

	status, env = call(t, app, http.MethodPost, "/api/chat/"+chatId+"/generate", manager, map[string]interface{}{
		"themeId":  themeId,
		"count":    2,
		"platform": "facebook",
	})
	require.Equal(t, http.StatusOK, status, env.Message)
	inChat := decode[struct {
		GeneratedContent []struct {
			Id string `json:"id"`
		} `json:"generatedContent"`
	}](t, env)
	require.Len(t, inChat.GeneratedContent, 2)

	status, env = call(t, app, http.MethodGet, "/api/chat/"+chatId, manager, nil)
	require.Equal(t, http.StatusOK, status)
	session := decode[struct {
		Version  int               `json:"version"`
		Messages []json.RawMessage `json:"messages"`
	}](t, env)
	assert.Equal(t, 2, session.Version)
	assert.Len(t, session.Messages, 2)

	status, env = call(t, app, http.MethodPost, "/api/content/optimize", manager, map[string]interface{}{
		"contentId": inChat.GeneratedContent[0].Id,
		"platform":  "instagram",
	})
	require.Equal(t, http.StatusOK, status, env.Message)
	optimized := decode[struct {
		Content struct {
			Id      string `json:"id"`
			Content string `json:"content"`
		} `json:"content"`
	}](t, env)
	assert.NotEqual(t, inChat.GeneratedContent[0].Id, optimized.Content.Id)
	assert.True(t, strings.HasPrefix(optimized.Content.Content, "[Optimized for instagram]"))

	status, env = call(t, app, http.MethodPost, "/api/social/connect", manager, map[string]interface{}{
		"platform": "instagram",
		"brandId":  brandId,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	status, env = call(t, app, http.MethodPost, "/api/social/post", manager, map[string]interface{}{
		"contentId": optimized.Content.Id,
		"platforms": []string{"instagram"},
		"brandId":   brandId,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	posts := decode[struct {
		Posts []struct {
			Status  string `json:"status"`
			Content string `json:"content"`
		} `json:"posts"`
	}](t, env)
	require.Len(t, posts.Posts, 1)
	assert.Equal(t, "published", posts.Posts[0].Status)
	assert.Equal(t, optimized.Content.Content, posts.Posts[0].Content)
}

func TestErrorEnvelopes(t *testing.T) {
	app := newTestApp(t)
	manager := register(t, app, "brand_manager")
	creator := register(t, app, "content_creator")

	status, env := call(t, app, http.MethodGet, "/api/brands", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Not authorized, no token", env.Message)

	status, _ = call(t, app, http.MethodGet, "/api/brands", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = call(t, app, http.MethodPost, "/api/brands", creator, map[string]interface{}{
		"name": "Nope", "description": "Creators cannot own brands",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, http.StatusForbidden, env.Code)

	status, env = call(t, app, http.MethodPost, "/api/brands", manager, map[string]interface{}{
		"name": "Flowa Tea", "description": "Loose leaf",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	brandId := decode[idOnly](t, env).Id

	status, env = call(t, app, http.MethodPost, "/api/chat", manager, map[string]interface{}{"brandId": brandId})
	require.Equal(t, http.StatusCreated, status, env.Message)
	chatId := decode[idOnly](t, env).Id

	// A stranger is refused an existing session but told a missing one does not exist.
	status, _ = call(t, app, http.MethodGet, "/api/chat/"+chatId, creator, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = call(t, app, http.MethodGet, "/api/chat/"+uuid.NewString(), creator, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = call(t, app, http.MethodGet, "/api/chat/not-a-uuid", manager, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = call(t, app, http.MethodPost, "/api/chat/"+chatId+"/generate", manager, map[string]interface{}{
		"themeId": uuid.NewString(),
		"count":   99,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, _ = call(t, app, http.MethodPost, "/api/chat", manager, map[string]interface{}{"brandId": "nope"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodGet, "/api/settings/advanced", creator, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "flowa_http_requests_total")
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ahosmi/content-dashboard/internal/openai"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func suggestionRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/ai/suggestions", h.GenerateSuggestions)
	return r
}

func fakeCompletion(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		if status >= 400 {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"upstream broke"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "cmpl-1",
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateSuggestionsSplitsLines(t *testing.T) {
	srv := fakeCompletion(t, "1. Big idea\n\n2. Bigger idea\n3. Biggest idea\n", http.StatusOK)
	h := &Handler{
		Logger: zap.NewNop(),
		OpenAI: openai.NewClient("key", "test-model", srv.URL, time.Second),
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/ai/suggestions",
		strings.NewReader(`{"topic":"go testing","platform":"youtube"}`))
	req.Header.Set("Content-Type", "application/json")
	suggestionRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	// blank lines dropped, order preserved
	assert.Equal(t, []string{"1. Big idea", "2. Bigger idea", "3. Biggest idea"}, res.Suggestions)
}

func TestGenerateSuggestionsUpstreamFailure(t *testing.T) {
	srv := fakeCompletion(t, "", http.StatusInternalServerError)
	h := &Handler{
		Logger: zap.NewNop(),
		OpenAI: openai.NewClient("key", "test-model", srv.URL, time.Second),
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/ai/suggestions",
		strings.NewReader(`{"topic":"go testing","platform":"youtube"}`))
	req.Header.Set("Content-Type", "application/json")
	suggestionRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var res struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Failed to generate suggestions", res.Error)
}

func TestGenerateSuggestionsMissingTopic(t *testing.T) {
	h := &Handler{Logger: zap.NewNop()}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/ai/suggestions",
		strings.NewReader(`{"platform":"youtube"}`))
	req.Header.Set("Content-Type", "application/json")
	suggestionRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

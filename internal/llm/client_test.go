package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oselabs/cfopilot/internal/llm"
)

func TestClient_Invoke(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deepseek-chat", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "Spending looks healthy."}},
			},
		})
	}))
	defer srv.Close()

	client := llm.NewClient(llm.Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "deepseek-chat",
	})

	got, err := client.Invoke(context.Background(), "You are a finance assistant.", "How are we doing?")
	require.NoError(t, err)
	assert.Equal(t, "Spending looks healthy.", got)
}

func TestClient_Invoke_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := llm.NewClient(llm.Config{BaseURL: srv.URL})

	_, err := client.Invoke(context.Background(), "", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Invoke_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := llm.NewClient(llm.Config{BaseURL: srv.URL})

	_, err := client.Invoke(context.Background(), "", "hello")
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

package convai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		L:       zap.NewNop(),
		BaseURL: srv.URL,
		APIKey:  "test-key",
	})
}

func TestListConversations(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversations", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))
		assert.Equal(t, "abc", r.URL.Query().Get("cursor"))
		assert.Equal(t, "5", r.URL.Query().Get("page_size"))

		_, _ = w.Write([]byte(`{
			"conversations": [
				{"conversation_id": "c1", "message_count": 12, "call_summary_title": "Parking question", "agent_id": "ignored"},
				{"conversation_id": "c2", "message_count": 3, "call_summary_title": "Room quote"}
			],
			"has_more": true,
			"next_cursor": "def"
		}`))
	})

	page, err := client.ListConversations(context.Background(), "abc", 5)
	require.NoError(t, err)

	assert.True(t, page.HasMore)
	assert.Equal(t, "def", page.NextCursor)
	require.Len(t, page.Conversations, 2)
	assert.Equal(t, ConversationSummary{
		ConversationID:   "c1",
		MessageCount:     12,
		CallSummaryTitle: "Parking question",
	}, page.Conversations[0])
}

func TestListConversations_EmptyPage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("cursor"))
		assert.Empty(t, r.URL.Query().Get("page_size"))

		_, _ = w.Write([]byte(`{"has_more": false}`))
	})

	page, err := client.ListConversations(context.Background(), "", 0)
	require.NoError(t, err)

	assert.False(t, page.HasMore)
	assert.NotNil(t, page.Conversations)
	assert.Empty(t, page.Conversations)
}

func TestListConversations_UpstreamError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":"invalid api key"}`, http.StatusUnauthorized)
	})

	_, err := client.ListConversations(context.Background(), "", 0)

	var apiErr *APIError

	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Body, "invalid api key")
}

func TestConversation_PassesPayloadThrough(t *testing.T) {
	payload := `{"conversation_id":"c1","transcript":[{"role":"user","message":"hi"}]}`

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversations/c1", r.URL.Path)

		_, _ = w.Write([]byte(payload))
	})

	raw, err := client.Conversation(context.Background(), "c1")
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(json.RawMessage(raw)))
}

func TestConversation_NotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.Conversation(context.Background(), "missing")

	var apiErr *APIError

	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

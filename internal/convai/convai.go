package convai

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

// APIError is a non-2xx answer from the conversational platform. The
// transport maps it to 502 with the upstream status attached.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("conversations api returned %d: %s", e.Status, e.Body)
}

// ConversationSummary is the trimmed view of one conversation; everything
// else the platform returns is dropped.
type ConversationSummary struct {
	ConversationID   string `json:"conversation_id"`
	MessageCount     int    `json:"message_count"`
	CallSummaryTitle string `json:"call_summary_title"`
}

type ConversationPage struct {
	Conversations []ConversationSummary `json:"conversations"`
	HasMore       bool                  `json:"has_more"`
	NextCursor    string                `json:"next_cursor,omitempty"`
}

type Config struct {
	L       *zap.Logger
	BaseURL string
	APIKey  string
}

// Client talks to the conversational-AI platform's conversations API.
type Client struct {
	l    *zap.Logger
	http *resty.Client
}

func New(conf Config) *Client {
	httpClient := resty.New().
		SetBaseURL(conf.BaseURL).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("xi-api-key", conf.APIKey)

	return &Client{
		l:    conf.L,
		http: httpClient,
	}
}

// ListConversations fetches one page of conversation summaries. Cursor and
// limit are optional; zero values are omitted from the request.
func (c *Client) ListConversations(ctx context.Context, cursor string, limit int) (*ConversationPage, error) {
	req := c.http.R().SetContext(ctx)

	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}

	if limit > 0 {
		req.SetQueryParam("page_size", strconv.Itoa(limit))
	}

	resp, err := req.Get("/conversations")
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var raw struct {
		Conversations []ConversationSummary `json:"conversations"`
		HasMore       bool                  `json:"has_more"`
		NextCursor    string                `json:"next_cursor"`
	}

	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("parse conversations page: %w", err)
	}

	page := &ConversationPage{
		Conversations: raw.Conversations,
		HasMore:       raw.HasMore,
		NextCursor:    raw.NextCursor,
	}

	if page.Conversations == nil {
		page.Conversations = []ConversationSummary{}
	}

	c.l.Debug("Fetched conversations page",
		zap.Int("count", len(page.Conversations)),
		zap.Bool("hasMore", page.HasMore),
	)

	return page, nil
}

// Conversation fetches one full conversation. The payload is passed through
// untouched because its transcript shape is owned by the platform.
func (c *Client) Conversation(ctx context.Context, id string) (json.RawMessage, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/conversations/" + id)
	if err != nil {
		return nil, fmt.Errorf("get conversation %v: %w", id, err)
	}

	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	return json.RawMessage(resp.Body()), nil
}

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"hotelconcierge/internal/booking"
	"hotelconcierge/internal/cache"
	"hotelconcierge/internal/convai"
	"hotelconcierge/internal/rag"
)

const quoteSuggestion = "Try: 'I need a hotel room for 2 people from December 10th to December 12th'"

type quoteRequest struct {
	Request string `json:"request"`
}

type queryRequest struct {
	Question string `json:"question"`
}

type extractionFailureBody struct {
	Error         string               `json:"error"`
	MissingFields []string             `json:"missing_fields"`
	Issues        []booking.FieldIssue `json:"issues"`
	Detected      map[string]any       `json:"detected"`
	Suggestion    string               `json:"suggestion"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.l.Error("Could not encode response", zap.Error(err))
	}
}

func (s *Server) quoteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input quoteRequest

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if strings.TrimSpace(input.Request) == "" {
		http.Error(w, "request text is required", http.StatusBadRequest)

		return
	}

	out, err := s.deps.Quotes.Quote(ctx, input.Request)
	if extractionErr := booking.IsExtractionError(err); extractionErr != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, extractionFailureBody{
			Error:         "could not interpret booking request",
			MissingFields: extractionErr.Codes(),
			Issues:        extractionErr.Issues(),
			Detected:      extractionErr.Detected(),
			Suggestion:    quoteSuggestion,
		})

		return
	}

	if err != nil {
		s.l.Error("Could not build quote", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) queryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.deps.Queries == nil {
		http.Error(w, "retrieval is not configured", http.StatusServiceUnavailable)

		return
	}

	var input queryRequest

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if strings.TrimSpace(input.Question) == "" {
		http.Error(w, "question is required", http.StatusBadRequest)

		return
	}

	key := cache.Key(input.Question)

	if cached, ok := s.deps.Answers.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(cached); err != nil {
			s.l.Error("Could not write cached answer", zap.Error(err))
		}

		return
	}

	answer, err := s.deps.Queries.Query(ctx, input.Question)
	if errors.Is(err, rag.ErrEmptyQuestion) {
		http.Error(w, "question is required", http.StatusBadRequest)

		return
	}

	if err != nil {
		s.l.Error("Could not answer question", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	if raw, err := json.Marshal(answer); err == nil {
		s.deps.Answers.Set(ctx, key, raw)
	}

	s.writeJSON(w, http.StatusOK, answer)
}

func (s *Server) rebuildIndexHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.deps.Queries == nil {
		http.Error(w, "retrieval is not configured", http.StatusServiceUnavailable)

		return
	}

	if err := s.deps.Queries.Rebuild(ctx); err != nil {
		s.l.Error("Could not rebuild retrieval index", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "index rebuild failed, previous index stays active",
		})

		return
	}

	s.deps.Answers.Flush(ctx)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "index rebuilt successfully",
	})
}

func (s *Server) reloadCatalogHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap, err := s.deps.Reloader.Reload(ctx)
	if err != nil {
		s.l.Error("Could not reload catalog", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "catalog reload failed, previous catalog stays active",
		})

		return
	}

	s.deps.Answers.Flush(ctx)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"version": snap.Version,
		"rooms":   len(snap.Profile.Rooms),
	})
}

func (s *Server) listConversationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.deps.Conversations == nil {
		http.Error(w, "conversations api is not configured", http.StatusServiceUnavailable)

		return
	}

	var limit int

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)

			return
		}

		limit = n
	}

	page, err := s.deps.Conversations.ListConversations(ctx, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		s.upstreamError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) conversationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.deps.Conversations == nil {
		http.Error(w, "conversations api is not configured", http.StatusServiceUnavailable)

		return
	}

	raw, err := s.deps.Conversations.Conversation(ctx, r.PathValue("id"))
	if err != nil {
		s.upstreamError(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(raw); err != nil {
		s.l.Error("Could not write conversation", zap.Error(err))
	}
}

func (s *Server) upstreamError(w http.ResponseWriter, err error) {
	var apiErr *convai.APIError

	if errors.As(err, &apiErr) {
		s.l.Warn("Conversations api rejected the request",
			zap.Int("upstreamStatus", apiErr.Status),
		)
		s.writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":           "conversations api request failed",
			"upstream_status": apiErr.Status,
		})

		return
	}

	s.l.Error("Could not reach conversations api", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "hotel-concierge",
	})
}

func (s *Server) addRoutes(r *http.ServeMux) {
	limited := func(h http.HandlerFunc) http.Handler {
		return s.applyMiddlewares(h, s.rateLimitMiddleware(), s.recoverMiddleware(), s.loggerMiddleware())
	}
	plain := func(h http.HandlerFunc) http.Handler {
		return s.applyMiddlewares(h, s.recoverMiddleware(), s.loggerMiddleware())
	}

	r.Handle("POST /api/quotes/v1", limited(s.quoteHandler))
	r.Handle("POST /api/queries/v1", limited(s.queryHandler))
	r.Handle("POST /api/index/rebuild/v1", plain(s.rebuildIndexHandler))
	r.Handle("POST /api/catalog/reload/v1", plain(s.reloadCatalogHandler))
	r.Handle("GET /api/conversations/v1", plain(s.listConversationsHandler))
	r.Handle("GET /api/conversations/v1/{id}", plain(s.conversationHandler))
	r.Handle(fmt.Sprintf("GET %s", s.conf.HealthEndpoint), plain(s.healthHandler))
}

package web

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hotelconcierge/internal/booking"
	"hotelconcierge/internal/cache"
	"hotelconcierge/internal/catalog"
	"hotelconcierge/internal/convai"
	"hotelconcierge/internal/rag"
)

// QuoteService interprets a free-text booking request into a priced quote.
type QuoteService interface {
	Quote(ctx context.Context, requestText string) (*booking.Quote, error)
}

// QueryService answers hotel questions and rebuilds its retrieval index.
type QueryService interface {
	Query(ctx context.Context, question string) (*rag.Answer, error)
	Rebuild(ctx context.Context) error
}

// CatalogReloader swaps in a freshly loaded catalog snapshot.
type CatalogReloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

// ConversationSource proxies the conversational platform's conversations.
type ConversationSource interface {
	ListConversations(ctx context.Context, cursor string, limit int) (*convai.ConversationPage, error)
	Conversation(ctx context.Context, id string) (json.RawMessage, error)
}

type Conf struct {
	L                 *zap.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	HealthEndpoint    string
	RateLimitPerMin   int
	RateLimitBurst    int
}

// Deps carries the services the handlers call. Queries and Conversations
// may be nil; their endpoints then answer 503. A nil Answers cache simply
// never hits.
type Deps struct {
	Quotes        QuoteService
	Queries       QueryService
	Reloader      CatalogReloader
	Conversations ConversationSource
	Answers       *cache.Cache
}

type Server struct {
	srv      *http.Server
	router   *http.ServeMux
	l        *zap.Logger
	conf     Conf
	deps     Deps
	limiters *limiterStore
}

func New(ctx context.Context, conf Conf, deps Deps) (*Server, error) {
	mux := http.NewServeMux()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:      srv,
		router:   mux,
		l:        conf.L,
		conf:     conf,
		deps:     deps,
		limiters: newLimiterStore(conf.RateLimitPerMin, conf.RateLimitBurst),
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}

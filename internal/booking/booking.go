package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hotelconcierge/internal/catalog"
)

type catalogSource interface {
	Current() (*catalog.Snapshot, error)
}

// Manager runs one request end to end: extract the intent, match it against
// the current catalog snapshot, assemble the quote. A request either fails
// with a typed ExtractionError or gets a complete quote, never half of one.
type Manager struct {
	l         *zap.Logger
	catalog   catalogSource
	extractor *Extractor
}

func New(l *zap.Logger, catalog catalogSource, extractor *Extractor) *Manager {
	return &Manager{
		l:         l,
		catalog:   catalog,
		extractor: extractor,
	}
}

func (m *Manager) Quote(_ context.Context, requestText string) (*Quote, error) {
	intent, err := m.extractor.Extract(requestText)
	if err != nil {
		return nil, err
	}

	snap, err := m.catalog.Current()
	if err != nil {
		return nil, fmt.Errorf("get catalog snapshot: %w", err)
	}

	offers := FindOffers(snap.Profile, intent)
	quote := AssembleQuote(snap.Profile, intent, offers)

	m.l.Info("Booking request interpreted",
		zap.String("room_type", string(intent.RoomType)),
		zap.String("check_in", quote.CheckIn),
		zap.String("check_out", quote.CheckOut),
		zap.Int("guests", intent.Guests),
		zap.Int("options", len(offers)),
		zap.Int("catalog_version", snap.Version),
	)

	return quote, nil
}

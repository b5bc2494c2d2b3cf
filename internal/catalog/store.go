package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type versionSource interface {
	GetID(ctx context.Context) (int, error)
}

// Snapshot is an immutable view of the catalog. Requests that started on one
// snapshot keep it even while a reload swaps in the next one.
type Snapshot struct {
	Profile  *Profile
	Version  int
	LoadedAt time.Time
}

type Config struct {
	L        *zap.Logger
	Versions versionSource
}

type Store struct {
	mu       sync.RWMutex
	l        *zap.Logger
	versions versionSource
	snap     *Snapshot
}

func NewStore(conf Config) *Store {
	//nolint:exhaustruct
	return &Store{
		l:        conf.L,
		versions: conf.Versions,
	}
}

// Install swaps the live snapshot atomically. On any error the previous
// snapshot stays in place.
func (s *Store) Install(ctx context.Context, profile *Profile) (*Snapshot, error) {
	version, err := s.versions.GetID(ctx)
	if err != nil {
		return nil, ErrNextVersion
	}

	snap := &Snapshot{
		Profile:  profile,
		Version:  version,
		LoadedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.l.Info("Hotel profile installed",
		zap.Int("version", version),
		zap.Int("rooms", len(profile.Rooms)),
	)

	return snap, nil
}

func (s *Store) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil {
		return nil, ErrProfileNotLoaded
	}

	return s.snap, nil
}

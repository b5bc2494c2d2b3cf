package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotelconcierge/internal/idgen/simple"
)

type failingVersions struct{}

func (failingVersions) GetID(_ context.Context) (int, error) {
	return 0, errors.New("sequence exhausted")
}

func TestStore_CurrentBeforeInstall(t *testing.T) {
	store := NewStore(Config{L: zap.NewNop(), Versions: simple.New()})

	_, err := store.Current()
	assert.ErrorIs(t, err, ErrProfileNotLoaded)
}

func TestStore_InstallAndCurrent(t *testing.T) {
	store := NewStore(Config{L: zap.NewNop(), Versions: simple.New()})

	snap, err := store.Install(context.Background(), validProfile())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Version)
	assert.False(t, snap.LoadedAt.IsZero())

	current, err := store.Current()
	require.NoError(t, err)
	assert.Same(t, snap, current)
}

func TestStore_ReloadKeepsHeldSnapshotIntact(t *testing.T) {
	store := NewStore(Config{L: zap.NewNop(), Versions: simple.New()})

	first, err := store.Install(context.Background(), validProfile())
	require.NoError(t, err)

	smaller := validProfile()
	smaller.Rooms = smaller.Rooms[:1]

	second, err := store.Install(context.Background(), smaller)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Version)

	assert.Len(t, first.Profile.Rooms, 2)

	current, err := store.Current()
	require.NoError(t, err)
	assert.Same(t, second, current)
}

func TestStore_InstallVersionSourceFailure(t *testing.T) {
	store := NewStore(Config{L: zap.NewNop(), Versions: failingVersions{}})

	_, err := store.Install(context.Background(), validProfile())
	assert.ErrorIs(t, err, ErrNextVersion)

	_, err = store.Current()
	assert.ErrorIs(t, err, ErrProfileNotLoaded)
}

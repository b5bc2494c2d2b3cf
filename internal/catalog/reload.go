package catalog

import "context"

// Reloader re-reads the profile file and installs it as a new snapshot.
// When the file fails to load or validate, nothing is installed and the
// previous snapshot keeps serving.
type Reloader struct {
	Path  string
	Store *Store
}

func (r *Reloader) Reload(ctx context.Context) (*Snapshot, error) {
	profile, err := Load(r.Path)
	if err != nil {
		return nil, err
	}

	return r.Store.Install(ctx, profile)
}

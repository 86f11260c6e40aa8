package storage

import "context"

// Record is the persisted session state: the raw credential string and the
// serialized profile document. Zero-value fields mean "not persisted".
//
// Record instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Record struct {
	Credential string `json:"credential,omitempty"`
	Profile    []byte `json:"profile,omitempty"`
}

// Empty reports whether the record carries neither a credential nor a
// profile.
func (r Record) Empty() bool {
	return r.Credential == "" && len(r.Profile) == 0
}

// Store is the persistence contract consumed by the session store. Load on
// a backend that has never been written returns a zero [Record] and no
// error; absence is not a failure.
type Store interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, rec Record) error
	Clear(ctx context.Context) error
}

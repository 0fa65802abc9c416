package credential

import "sync"

// Repository persists the single credential record. At most one record
// exists at a time; Save overwrites whatever was stored before.
//
// Unlike cart and order state, the credential record lives in durable
// storage and survives restarts.
type Repository interface {
	// Load returns the stored record; a zero Record means nothing is stored.
	Load() (Record, error)
	Save(rec Record) error
	// SetToken replaces only the session token, leaving account fields alone.
	SetToken(token string) error
	ClearToken() error
	// Clear removes the whole record, token included.
	Clear() error
}

// InMemoryRepository backs tests and the database-free demo server.
type InMemoryRepository struct {
	mu  sync.RWMutex
	rec Record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Load() (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rec, nil
}

func (r *InMemoryRepository) Save(rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec = rec
	return nil
}

func (r *InMemoryRepository) SetToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec.Token = token
	return nil
}

func (r *InMemoryRepository) ClearToken() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec.Token = ""
	return nil
}

func (r *InMemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec = Record{}
	return nil
}

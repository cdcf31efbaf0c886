package history

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	audit "ecotrack/audit-portal/audit-portal-backend/internal/audit/model"
	"ecotrack/audit-portal/audit-portal-backend/internal/storage"
)

// ErrNotFound is returned when no audit matches the requested id.
var ErrNotFound = errors.New("audit not found")

// Repository persists the audit history as one shared ordered list.
// New entries are prepended so index 0 is always the latest audit.
type Repository struct {
	store  storage.Store
	logger *zap.Logger
}

func NewRepository(store storage.Store, logger *zap.Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

func (r *Repository) load() ([]*audit.AuditResult, error) {
	var list []*audit.AuditResult
	if _, err := r.store.Get(storage.KeyHistory, &list); err != nil {
		return nil, fmt.Errorf("failed to load audit history: %w", err)
	}
	return list, nil
}

// Append prepends a finished audit to the shared history list.
func (r *Repository) Append(result *audit.AuditResult) error {
	list, err := r.load()
	if err != nil {
		return err
	}

	list = append([]*audit.AuditResult{result}, list...)

	if err := r.store.Set(storage.KeyHistory, list); err != nil {
		return fmt.Errorf("failed to persist audit history: %w", err)
	}

	r.logger.Debug("Appended audit to history",
		zap.String("audit_id", result.ID),
		zap.Int("total", len(list)))
	return nil
}

// ListFor returns the audits owned by userID, newest first.
func (r *Repository) ListFor(userID string) ([]*audit.AuditResult, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}

	owned := make([]*audit.AuditResult, 0, len(list))
	for _, a := range list {
		if a.UserID == userID {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

// Get returns the audit with the given id owned by userID.
func (r *Repository) Get(userID, id string) (*audit.AuditResult, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, a := range list {
		if a.ID == id && a.UserID == userID {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

// Remove deletes the audit with the given id owned by userID. Removing
// an id that does not exist is a no-op.
func (r *Repository) Remove(userID, id string) error {
	list, err := r.load()
	if err != nil {
		return err
	}

	kept := make([]*audit.AuditResult, 0, len(list))
	for _, a := range list {
		if a.ID == id && a.UserID == userID {
			continue
		}
		kept = append(kept, a)
	}

	if len(kept) == len(list) {
		return nil
	}

	if err := r.store.Set(storage.KeyHistory, kept); err != nil {
		return fmt.Errorf("failed to persist audit history: %w", err)
	}
	return nil
}

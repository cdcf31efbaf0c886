package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	audit "ecotrack/audit-portal/audit-portal-backend/internal/audit/model"
	"ecotrack/audit-portal/audit-portal-backend/internal/storage"
)

func newTestRepo(t *testing.T) *Repository {
	store, err := storage.NewFileStore(t.TempDir(), zap.NewNop())
	assert.NoError(t, err)
	return NewRepository(store, zap.NewNop())
}

func testAudit(id, userID string) *audit.AuditResult {
	return &audit.AuditResult{
		ID:        id,
		UserID:    userID,
		AuditDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAppendPrepends(t *testing.T) {
	repo := newTestRepo(t)

	assert.NoError(t, repo.Append(testAudit("a1", "u1")))
	assert.NoError(t, repo.Append(testAudit("a2", "u1")))

	list, err := repo.ListFor("u1")
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "a2", list[0].ID)
	assert.Equal(t, "a1", list[1].ID)
}

func TestListForFiltersByOwner(t *testing.T) {
	repo := newTestRepo(t)

	assert.NoError(t, repo.Append(testAudit("a1", "u1")))
	assert.NoError(t, repo.Append(testAudit("a2", "u2")))

	list, err := repo.ListFor("u1")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "a1", list[0].ID)

	list, err = repo.ListFor("u3")
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetScopedToOwner(t *testing.T) {
	repo := newTestRepo(t)

	assert.NoError(t, repo.Append(testAudit("a1", "u1")))

	got, err := repo.Get("u1", "a1")
	assert.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	_, err = repo.Get("u2", "a1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveUnknownIsNoOp(t *testing.T) {
	repo := newTestRepo(t)

	assert.NoError(t, repo.Append(testAudit("a1", "u1")))
	assert.NoError(t, repo.Remove("u1", "nope"))
	assert.NoError(t, repo.Remove("u2", "a1"))

	list, err := repo.ListFor("u1")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRemoveDeletesOwnedAudit(t *testing.T) {
	repo := newTestRepo(t)

	assert.NoError(t, repo.Append(testAudit("a1", "u1")))
	assert.NoError(t, repo.Append(testAudit("a2", "u1")))
	assert.NoError(t, repo.Remove("u1", "a1"))

	list, err := repo.ListFor("u1")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "a2", list[0].ID)
}

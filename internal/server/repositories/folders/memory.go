package folders

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/foldervault/internal/common"
	"github.com/dmitrijs2005/foldervault/internal/server/models"
)

// MemoryRepository keeps folders in process memory. It is used when the
// server runs without a database.
type MemoryRepository struct {
	mu      sync.RWMutex
	folders map[string]models.Folder
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{folders: make(map[string]models.Folder)}
}

func (r *MemoryRepository) Create(ctx context.Context, f *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.folders[f.ID] = *f
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, f *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.folders[f.ID]
	if !ok || cur.UserID != f.UserID {
		return common.ErrorNotFound
	}
	cur.Name = f.Name
	cur.RevisionDate = f.RevisionDate
	r.folders[f.ID] = cur
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.folders[id]
	if !ok || cur.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.folders, id)
	return nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*models.Folder
	for _, f := range r.folders {
		if f.UserID == userID {
			c := f
			result = append(result, &c)
		}
	}
	slices.SortFunc(result, func(a, b *models.Folder) int { return strings.Compare(a.ID, b.ID) })
	return result, nil
}

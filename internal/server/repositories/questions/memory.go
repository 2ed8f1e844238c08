package questions

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps question documents in a map. Reads and writes
// copy documents, so callers never share nested slices with the store.
type InMemoryRepository struct {
	mu        sync.RWMutex
	questions map[string]*models.Question
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{questions: make(map[string]*models.Question)}
}

func (r *InMemoryRepository) Create(ctx context.Context, q *models.Question) (*models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q.ID = uuid.NewString()
	assignEmbeddedIDs(q, uuid.NewString)
	r.questions[q.ID] = q.Clone()
	return q, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.questions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return q.Clone(), nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Question, 0, len(r.questions))
	for _, q := range r.questions {
		result = append(result, q.Clone())
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, q *models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[q.ID]; !ok {
		return common.ErrorNotFound
	}
	assignEmbeddedIDs(q, uuid.NewString)
	r.questions[q.ID] = q.Clone()
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.questions, id)
	return nil
}

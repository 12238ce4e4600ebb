package api

import (
	"sync"

	"github.com/exegete-ai/exegete/pkg/models"
)

// storedPlan pairs a generated plan with the request that produced it, so a
// job created from the plan id also carries the request snapshot.
type storedPlan struct {
	plan    *models.ExecutionPlan
	request *models.PlanRequest
}

// planStore holds generated plans between the plan endpoints and job
// creation. Process-local by design: a job freezes its own snapshot at
// creation, so the store is only a handoff buffer.
type planStore struct {
	mu    sync.RWMutex
	plans map[string]storedPlan
}

func newPlanStore() *planStore {
	return &planStore{plans: make(map[string]storedPlan)}
}

func (s *planStore) put(plan *models.ExecutionPlan, req *models.PlanRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[plan.PlanID] = storedPlan{plan: plan, request: req}
}

func (s *planStore) get(planID string) (*models.ExecutionPlan, *models.PlanRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.plans[planID]
	if !ok {
		return nil, nil, false
	}
	return stored.plan, stored.request, true
}

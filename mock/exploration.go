package mock

import (
	"context"

	"github.com/fwojciec/sitegraph"
)

var _ sitegraph.ExplorationService = (*ExplorationService)(nil)

// ExplorationService is a mock implementation of sitegraph.ExplorationService.
type ExplorationService struct {
	CreateExplorationFn   func(ctx context.Context, e *sitegraph.Exploration) error
	FindExplorationByIDFn func(ctx context.Context, id string) (*sitegraph.Exploration, error)
	FindExplorationsFn    func(ctx context.Context, filter sitegraph.ExplorationFilter) ([]*sitegraph.Exploration, error)
	DeleteExplorationFn   func(ctx context.Context, id string) error
}

func (s *ExplorationService) CreateExploration(ctx context.Context, e *sitegraph.Exploration) error {
	return s.CreateExplorationFn(ctx, e)
}

func (s *ExplorationService) FindExplorationByID(ctx context.Context, id string) (*sitegraph.Exploration, error) {
	return s.FindExplorationByIDFn(ctx, id)
}

func (s *ExplorationService) FindExplorations(ctx context.Context, filter sitegraph.ExplorationFilter) ([]*sitegraph.Exploration, error) {
	return s.FindExplorationsFn(ctx, filter)
}

func (s *ExplorationService) DeleteExploration(ctx context.Context, id string) error {
	return s.DeleteExplorationFn(ctx, id)
}

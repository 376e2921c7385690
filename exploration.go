package sitegraph

import (
	"context"
	"time"
)

// Exploration is a stored crawl-and-model result.
type Exploration struct {
	ID        string     `json:"id"`
	URL       string     `json:"url"`
	Domain    string     `json:"domain"`
	Category  Category   `json:"category"`
	PageCount int        `json:"pageCount"`
	EdgeCount int        `json:"edgeCount"`
	Structure *Structure `json:"structure"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewExploration returns an exploration summarizing s.
func NewExploration(s *Structure) *Exploration {
	return &Exploration{
		URL:       s.URL,
		Domain:    s.Domain,
		Category:  s.Category,
		PageCount: s.PageCount,
		EdgeCount: s.EdgeCount,
		Structure: s,
	}
}

// Validate returns an error if the exploration contains invalid fields.
func (e *Exploration) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "exploration URL required")
	}
	if e.Structure == nil {
		return Errorf(EINVALID, "exploration structure required")
	}
	return nil
}

// ExplorationService represents a service for managing explorations.
type ExplorationService interface {
	// CreateExploration stores a new exploration and assigns its ID.
	CreateExploration(ctx context.Context, e *Exploration) error

	// FindExplorationByID retrieves an exploration by ID.
	// Returns ENOTFOUND if the exploration does not exist.
	FindExplorationByID(ctx context.Context, id string) (*Exploration, error)

	// FindExplorations retrieves explorations matching the filter, newest
	// first. The Structure field is not populated.
	FindExplorations(ctx context.Context, filter ExplorationFilter) ([]*Exploration, error)

	// DeleteExploration permanently removes an exploration and its tests.
	// Returns ENOTFOUND if the exploration does not exist.
	DeleteExploration(ctx context.Context, id string) error
}

// ExplorationFilter represents a filter for FindExplorations.
type ExplorationFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

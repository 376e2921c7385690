package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fwojciec/sitegraph"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitegraph.ExplorationService = (*ExplorationService)(nil)

// ExplorationService implements sitegraph.ExplorationService using SQLite.
// The structure document is stored as JSON.
type ExplorationService struct {
	db *DB
}

// NewExplorationService creates a new ExplorationService.
func NewExplorationService(db *DB) *ExplorationService {
	return &ExplorationService{db: db}
}

// CreateExploration stores e and assigns its ID and creation time.
func (s *ExplorationService) CreateExploration(ctx context.Context, e *sitegraph.Exploration) error {
	if err := e.Validate(); err != nil {
		return err
	}

	doc, err := encodeDocument(e.Structure, "structure")
	if err != nil {
		return err
	}

	e.ID = uuid.New().String()
	e.CreatedAt = timestamp()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO explorations (id, url, domain, category, page_count, edge_count, structure, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.URL, e.Domain, string(e.Category), e.PageCount, e.EdgeCount, doc,
		formatTime(e.CreatedAt))
	return err
}

// FindExplorationByID retrieves an exploration, including its structure.
func (s *ExplorationService) FindExplorationByID(ctx context.Context, id string) (*sitegraph.Exploration, error) {
	var e sitegraph.Exploration
	var category, doc, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, domain, category, page_count, edge_count, structure, created_at
		FROM explorations
		WHERE id = ?
	`, id).Scan(&e.ID, &e.URL, &e.Domain, &category, &e.PageCount, &e.EdgeCount, &doc, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sitegraph.Errorf(sitegraph.ENOTFOUND, "exploration not found")
	}
	if err != nil {
		return nil, err
	}

	e.Category = sitegraph.Category(category)
	if e.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	var structure sitegraph.Structure
	if err := decodeDocument(doc, &structure, "structure"); err != nil {
		return nil, err
	}
	e.Structure = &structure
	return &e, nil
}

// FindExplorations retrieves exploration summaries matching the filter,
// newest first.
func (s *ExplorationService) FindExplorations(ctx context.Context, filter sitegraph.ExplorationFilter) ([]*sitegraph.Exploration, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, domain, category, page_count, edge_count, created_at FROM explorations WHERE 1=1")
	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	explorations := []*sitegraph.Exploration{}
	for rows.Next() {
		var e sitegraph.Exploration
		var category, createdAt string
		if err := rows.Scan(&e.ID, &e.URL, &e.Domain, &category, &e.PageCount, &e.EdgeCount, &createdAt); err != nil {
			return nil, err
		}
		e.Category = sitegraph.Category(category)
		if e.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		explorations = append(explorations, &e)
	}
	return explorations, rows.Err()
}

// DeleteExploration permanently removes an exploration and its tests.
func (s *ExplorationService) DeleteExploration(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM explorations WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sitegraph.Errorf(sitegraph.ENOTFOUND, "exploration not found")
	}
	return nil
}

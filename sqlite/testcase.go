package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fwojciec/sitegraph"
)

// Compile-time interface verification.
var _ sitegraph.TestCaseService = (*TestCaseService)(nil)

// TestCaseService implements sitegraph.TestCaseService using SQLite.
type TestCaseService struct {
	db *DB
}

// NewTestCaseService creates a new TestCaseService.
func NewTestCaseService(db *DB) *TestCaseService {
	return &TestCaseService{db: db}
}

// ReplaceTestBatch stores batch in place of any earlier batch for the same
// exploration and page. Code generated for the earlier batch is removed.
func (s *TestCaseService) ReplaceTestBatch(ctx context.Context, batch *sitegraph.TestBatch) error {
	if err := batch.Validate(); err != nil {
		return err
	}
	if err := s.explorationExists(ctx, batch.ExplorationID); err != nil {
		return err
	}

	cases, err := encodeDocument(batch.TestCases, "test cases")
	if err != nil {
		return err
	}
	batch.CreatedAt = timestamp()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM test_batches WHERE exploration_id = ? AND page_url = ?",
		batch.ExplorationID, batch.PageURL); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO test_batches (exploration_id, page_url, test_cases, created_at)
		VALUES (?, ?, ?, ?)
	`, batch.ExplorationID, batch.PageURL, cases, formatTime(batch.CreatedAt)); err != nil {
		return err
	}
	return tx.Commit()
}

// FindTestBatch returns the stored batch for an exploration and page.
func (s *TestCaseService) FindTestBatch(ctx context.Context, explorationID, pageURL string) (*sitegraph.TestBatch, error) {
	batch := sitegraph.TestBatch{ExplorationID: explorationID, PageURL: pageURL}
	var cases, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT test_cases, created_at
		FROM test_batches
		WHERE exploration_id = ? AND page_url = ?
	`, explorationID, pageURL).Scan(&cases, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sitegraph.Errorf(sitegraph.ENOTFOUND, "test cases not found")
	}
	if err != nil {
		return nil, err
	}

	if err := decodeDocument(cases, &batch.TestCases, "test cases"); err != nil {
		return nil, err
	}
	if batch.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &batch, nil
}

// SaveGeneratedCode stores code for a test case of an existing batch,
// replacing earlier code.
func (s *TestCaseService) SaveGeneratedCode(ctx context.Context, code *sitegraph.GeneratedCode) error {
	batch, err := s.FindTestBatch(ctx, code.ExplorationID, code.PageURL)
	if err != nil {
		return err
	}
	if _, ok := batch.TestCase(code.TestCaseID); !ok {
		return sitegraph.Errorf(sitegraph.ENOTFOUND, "test case %d not found", code.TestCaseID)
	}
	code.CreatedAt = timestamp()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO generated_code (exploration_id, page_url, test_case_id, code, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (exploration_id, page_url, test_case_id)
		DO UPDATE SET code = excluded.code, created_at = excluded.created_at
	`, code.ExplorationID, code.PageURL, code.TestCaseID, code.Code, formatTime(code.CreatedAt))
	return err
}

// FindGeneratedCode returns the stored code for a test case.
func (s *TestCaseService) FindGeneratedCode(ctx context.Context, explorationID, pageURL string, testCaseID int) (*sitegraph.GeneratedCode, error) {
	code := sitegraph.GeneratedCode{ExplorationID: explorationID, PageURL: pageURL, TestCaseID: testCaseID}
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT code, created_at
		FROM generated_code
		WHERE exploration_id = ? AND page_url = ? AND test_case_id = ?
	`, explorationID, pageURL, testCaseID).Scan(&code.Code, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sitegraph.Errorf(sitegraph.ENOTFOUND, "generated code not found")
	}
	if err != nil {
		return nil, err
	}
	if code.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &code, nil
}

func (s *TestCaseService) explorationExists(ctx context.Context, id string) error {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM explorations WHERE id = ?", id).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		return sitegraph.Errorf(sitegraph.ENOTFOUND, "exploration not found")
	}
	return nil
}

package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCases(titles ...string) []*sitegraph.TestCase {
	cases := make([]*sitegraph.TestCase, len(titles))
	for i, title := range titles {
		cases[i] = &sitegraph.TestCase{
			ID:              i + 1,
			Title:           title,
			Steps:           []string{"Navigate to https://example.com/"},
			ExpectedResults: []string{"Page loads without errors"},
			Actions:         []sitegraph.Action{{Kind: sitegraph.ActionNavigate, URL: "https://example.com/"}},
		}
	}
	return cases
}

func TestTestCaseService_ReplaceTestBatch(t *testing.T) {
	t.Parallel()

	t.Run("stores site and page batches separately", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		e := createExploration(t, sqlite.NewExplorationService(db), "https://example.com/")
		svc := sqlite.NewTestCaseService(db)
		ctx := context.Background()

		require.NoError(t, svc.ReplaceTestBatch(ctx, &sitegraph.TestBatch{ExplorationID: e.ID, TestCases: testCases("site")}))
		require.NoError(t, svc.ReplaceTestBatch(ctx, &sitegraph.TestBatch{
			ExplorationID: e.ID,
			PageURL:       "https://example.com/post",
			TestCases:     testCases("page one", "page two"),
		}))

		site, err := svc.FindTestBatch(ctx, e.ID, "")
		require.NoError(t, err)
		assert.Equal(t, testCases("site"), site.TestCases)

		page, err := svc.FindTestBatch(ctx, e.ID, "https://example.com/post")
		require.NoError(t, err)
		assert.Len(t, page.TestCases, 2)
	})

	t.Run("replaces the batch and drops its code", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		e := createExploration(t, sqlite.NewExplorationService(db), "https://example.com/")
		svc := sqlite.NewTestCaseService(db)
		ctx := context.Background()

		require.NoError(t, svc.ReplaceTestBatch(ctx, &sitegraph.TestBatch{ExplorationID: e.ID, TestCases: testCases("old")}))
		require.NoError(t, svc.SaveGeneratedCode(ctx, &sitegraph.GeneratedCode{ExplorationID: e.ID, TestCaseID: 1, Code: "print()"}))

		require.NoError(t, svc.ReplaceTestBatch(ctx, &sitegraph.TestBatch{ExplorationID: e.ID, TestCases: testCases("new")}))

		batch, err := svc.FindTestBatch(ctx, e.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "new", batch.TestCases[0].Title)

		_, err = svc.FindGeneratedCode(ctx, e.ID, "", 1)
		assert.Equal(t, sitegraph.ENOTFOUND, sitegraph.ErrorCode(err))
	})

	t.Run("unknown exploration", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewTestCaseService(setupTestDB(t))
		err := svc.ReplaceTestBatch(context.Background(), &sitegraph.TestBatch{ExplorationID: "missing"})
		assert.Equal(t, sitegraph.ENOTFOUND, sitegraph.ErrorCode(err))
	})

	t.Run("requires an exploration ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewTestCaseService(setupTestDB(t))
		err := svc.ReplaceTestBatch(context.Background(), &sitegraph.TestBatch{})
		assert.Equal(t, sitegraph.EINVALID, sitegraph.ErrorCode(err))
	})
}

func TestTestCaseService_GeneratedCode(t *testing.T) {
	t.Parallel()

	t.Run("saves and overwrites code", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		e := createExploration(t, sqlite.NewExplorationService(db), "https://example.com/")
		svc := sqlite.NewTestCaseService(db)
		ctx := context.Background()
		require.NoError(t, svc.ReplaceTestBatch(ctx, &sitegraph.TestBatch{ExplorationID: e.ID, TestCases: testCases("a", "b")}))

		require.NoError(t, svc.SaveGeneratedCode(ctx, &sitegraph.GeneratedCode{ExplorationID: e.ID, TestCaseID: 2, Code: "v1"}))
		require.NoError(t, svc.SaveGeneratedCode(ctx, &sitegraph.GeneratedCode{ExplorationID: e.ID, TestCaseID: 2, Code: "v2"}))

		got, err := svc.FindGeneratedCode(ctx, e.ID, "", 2)
		require.NoError(t, err)
		assert.Equal(t, "v2", got.Code)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("rejects code for an unknown test case", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		e := createExploration(t, sqlite.NewExplorationService(db), "https://example.com/")
		svc := sqlite.NewTestCaseService(db)
		ctx := context.Background()
		require.NoError(t, svc.ReplaceTestBatch(ctx, &sitegraph.TestBatch{ExplorationID: e.ID, TestCases: testCases("a")}))

		err := svc.SaveGeneratedCode(ctx, &sitegraph.GeneratedCode{ExplorationID: e.ID, TestCaseID: 9, Code: "x"})
		assert.Equal(t, sitegraph.ENOTFOUND, sitegraph.ErrorCode(err))
	})

	t.Run("rejects code without a batch", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		e := createExploration(t, sqlite.NewExplorationService(db), "https://example.com/")
		svc := sqlite.NewTestCaseService(db)

		err := svc.SaveGeneratedCode(context.Background(), &sitegraph.GeneratedCode{ExplorationID: e.ID, TestCaseID: 1})
		assert.Equal(t, sitegraph.ENOTFOUND, sitegraph.ErrorCode(err))
	})
}

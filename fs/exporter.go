// Package fs exports explorations and their test batches as JSON files
// with a Markdown summary.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitegraph"
)

// File names within an export directory.
const (
	StructureFile = "structure.json"
	SiteTestsFile = "tests.json"
	PagesDir      = "pages"
)

// URLToPath converts a page URL to a relative JSON file path.
// Example: https://example.com/docs/api/users → docs/api/users.json
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path
	if path == "" || path == "/" {
		return "index.json", nil
	}

	path = strings.TrimPrefix(path, "/")
	if strings.HasSuffix(path, "/") {
		return path + "index.json", nil
	}
	return path + ".json", nil
}

// Exporter writes an exploration and its test batches beneath a directory:
// the structure document to structure.json, the whole-site batch to
// tests.json, each page batch to pages/<url path>.json and a summary of
// all of them to report.md.
type Exporter struct {
	baseDir string
}

// NewExporter creates a new Exporter that writes to the given base directory.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// Export writes e and batches. Batches belonging to another exploration are
// rejected. It returns the paths written, relative to the base directory.
func (x *Exporter) Export(ctx context.Context, e *sitegraph.Exploration, batches []*sitegraph.TestBatch) ([]string, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	var written []string
	if err := x.writeJSON(StructureFile, e); err != nil {
		return nil, err
	}
	written = append(written, StructureFile)

	for _, b := range batches {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if b.ExplorationID != e.ID {
			return written, sitegraph.Errorf(sitegraph.EINVALID, "test batch belongs to exploration %q", b.ExplorationID)
		}

		rel := SiteTestsFile
		if b.PageURL != "" {
			p, err := URLToPath(b.PageURL)
			if err != nil {
				return written, sitegraph.Errorf(sitegraph.EINVALID, "invalid page URL %q", b.PageURL)
			}
			rel = filepath.Join(PagesDir, filepath.FromSlash(p))
		}
		if err := x.writeJSON(rel, b); err != nil {
			return written, err
		}
		written = append(written, rel)
	}

	f, err := os.Create(filepath.Join(x.baseDir, ReportFile))
	if err != nil {
		return written, err
	}
	if err := WriteReport(f, e, batches); err != nil {
		f.Close()
		return written, err
	}
	if err := f.Close(); err != nil {
		return written, err
	}
	return append(written, ReportFile), nil
}

func (x *Exporter) writeJSON(rel string, v any) error {
	fullPath := filepath.Join(x.baseDir, rel)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, append(data, '\n'), 0644)
}

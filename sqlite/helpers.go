package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timestamp returns the current time as stored: UTC, whole seconds.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// parseTime parses a stored timestamp column.
func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// encodeDocument marshals v for a JSON text column.
func encodeDocument(v any, what string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", what, err)
	}
	return string(data), nil
}

// decodeDocument unmarshals a JSON text column into v.
func decodeDocument(doc string, v any, what string) error {
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", what, err)
	}
	return nil
}

// appendPagination adds LIMIT and OFFSET clauses for positive values.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

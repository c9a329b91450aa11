package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/poster"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ poster.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements poster.AnalysisService using SQLite.
// Records are stored as JSON in a single column.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// CreateAnalysis stores a new analysis, assigning its ID and CreatedAt.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, a *poster.Analysis) error {
	if err := a.Validate(); err != nil {
		return err
	}

	record, err := json.Marshal(a.Record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	a.ID = uuid.New().String()
	a.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, url, record, content_hash, content_length, content_tokens, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.URL, string(record), a.ContentHash, a.ContentLength, a.ContentTokens,
		a.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnalysisByID retrieves an analysis by ID.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*poster.Analysis, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, record, content_hash, content_length, content_tokens, created_at
		FROM analyses
		WHERE id = ?
	`, id)

	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, poster.Errorf(poster.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindAnalyses retrieves analyses matching the filter, newest first.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter poster.AnalysisFilter) ([]*poster.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, record, content_hash, content_length, content_tokens, created_at FROM analyses WHERE 1=1")

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

	analyses := []*poster.Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}

	return analyses, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*poster.Analysis, error) {
	var a poster.Analysis
	var record, createdAt string

	if err := row.Scan(&a.ID, &a.URL, &record, &a.ContentHash, &a.ContentLength,
		&a.ContentTokens, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(record), &a.Record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	var err error
	a.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &a, nil
}

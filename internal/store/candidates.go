// Package store supplies candidate records from PostgreSQL. The matching
// core only reads from storage; writes belong to the upload service.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-matcher/internal/types"
)

// CandidateStore lists stored resume submissions for ranking.
type CandidateStore interface {
	ListCandidates(ctx context.Context) ([]types.CandidateRecord, error)
}

// PostgresStore implements CandidateStore over a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ListCandidates returns every submission that has a resume URL, in upload
// order. Rows without a URL cannot be analyzed and are filtered here rather
// than counted as ranking skips.
func (s *PostgresStore) ListCandidates(ctx context.Context) ([]types.CandidateRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, email, resume_url
		 FROM resumes
		 WHERE resume_url <> ''
		 ORDER BY uploaded_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.CandidateRecord
	for rows.Next() {
		var id uuid.UUID
		var email, resumeURL string
		if err := rows.Scan(&id, &email, &resumeURL); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, types.CandidateRecord{
			ID:        id.String(),
			Email:     email,
			ResumeURL: resumeURL,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate rows: %w", err)
	}

	return candidates, nil
}

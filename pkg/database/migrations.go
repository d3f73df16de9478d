package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient dashboard search on proposal titles and content.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_review_jobs_title_gin
		ON review_jobs USING gin(to_tsvector('simple', title))`)
	if err != nil {
		return fmt.Errorf("failed to create title GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_review_jobs_proposal_content_gin
		ON review_jobs USING gin(to_tsvector('simple', proposal_content))`)
	if err != nil {
		return fmt.Errorf("failed to create proposal_content GIN index: %w", err)
	}

	return nil
}

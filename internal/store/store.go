package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tracker-tv/github-compliance-bot/models"
)

var ErrNotFound = errors.New("not found")

// Store is the storage collaborator for persisted rule suite events and the
// GitHub-username-to-email directory.
type Store interface {
	// FindByGithubID returns the event for a GitHub suite id, or ErrNotFound.
	FindByGithubID(ctx context.Context, githubID string) (*models.RuleSuiteEvent, error)
	// Create inserts a new event. Inserting an already-recorded github_id is
	// a no-op; the unique index is the source of truth for deduplication.
	Create(ctx context.Context, event models.NewRuleSuiteEvent) error
	// ListUnnotified returns all events of a repository that have not been
	// notified yet, oldest first.
	ListUnnotified(ctx context.Context, repoFullName string) ([]models.RuleSuiteEvent, error)
	// MarkNotified flips the notified flag. Returns ErrNotFound for an
	// unknown internal id.
	MarkNotified(ctx context.Context, id int64) error
	// GetEmailByGithubUsername resolves a GitHub login to an email address,
	// or ErrNotFound when no mapping exists.
	GetEmailByGithubUsername(ctx context.Context, username string) (string, error)
}

// Open opens the SQLite database at path with foreign keys on.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type sqlStore struct {
	db *sql.DB
}

// New wraps an opened database in a Store. Callers run Migrate first.
func New(db *sql.DB) Store {
	return &sqlStore{db: db}
}

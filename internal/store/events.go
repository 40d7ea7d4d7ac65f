package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/tracker-tv/github-compliance-bot/models"
)

const eventColumns = `id, github_id, repository_full_name, event_data, resulting_commit, pull_request, notified, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (models.RuleSuiteEvent, error) {
	var (
		e      models.RuleSuiteEvent
		commit sql.NullString
		pr     sql.NullString
	)
	err := row.Scan(&e.ID, &e.GithubID, &e.RepositoryFullName, &e.EventData, &commit, &pr, &e.Notified, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return e, err
	}
	if commit.Valid {
		e.ResultingCommit = &commit.String
	}
	if pr.Valid {
		e.PullRequest = &pr.String
	}
	return e, nil
}

func (s *sqlStore) FindByGithubID(ctx context.Context, githubID string) (*models.RuleSuiteEvent, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM rule_suite_events WHERE github_id=?`, githubID)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *sqlStore) Create(ctx context.Context, event models.NewRuleSuiteEvent) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rule_suite_events(github_id, repository_full_name, event_data, resulting_commit, pull_request, notified, created_at, updated_at)
		 VALUES (?,?,?,?,?,?,?,?)
		 ON CONFLICT(github_id) DO NOTHING`,
		event.GithubID, event.RepositoryFullName, event.EventData,
		nullable(event.ResultingCommit), nullable(event.PullRequest),
		event.Notified, now, now)
	return err
}

func (s *sqlStore) ListUnnotified(ctx context.Context, repoFullName string) ([]models.RuleSuiteEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM rule_suite_events WHERE repository_full_name=? AND notified=0 ORDER BY created_at, id`,
		repoFullName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.RuleSuiteEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *sqlStore) MarkNotified(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE rule_suite_events SET notified=1, updated_at=? WHERE id=?`,
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqlStore) GetEmailByGithubUsername(ctx context.Context, username string) (string, error) {
	var email string
	err := s.db.QueryRowContext(ctx, `SELECT email FROM users WHERE github_username=?`, username).Scan(&email)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

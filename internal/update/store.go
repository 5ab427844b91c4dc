package update

import (
	"context"
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/hymnchtv/internal/db"
)

// Job status values.
const (
	StatusRunning    = "running"
	StatusSuccessful = "successful"
	StatusFailed     = "failed"
)

// Job is a persisted package download.
type Job struct {
	ID          int64
	URL         string
	Path        string
	VersionCode int
	Status      string
	BytesTotal  int64
	BytesDone   int64
	Err         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Percent returns the completed share of the download, or -1 when the
// size is unknown.
func (j Job) Percent() float64 {
	if j.BytesTotal <= 0 {
		return -1
	}
	return float64(j.BytesDone) / float64(j.BytesTotal) * 100
}

// Store persists download jobs in the update_downloads table.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create records a new running job and returns its id.
func (s *Store) Create(ctx context.Context, url, path string, versionCode int) (int64, error) {
	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO update_downloads (url, path, version_code, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, url, path, versionCode, StatusRunning, now, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Progress updates the byte counters of a job.
func (s *Store) Progress(ctx context.Context, id, done, total int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE update_downloads SET bytes_done = ?, bytes_total = ?, updated_at = ?
		WHERE id = ?
	`, done, total, time.Now().Unix(), id)
	return err
}

// Finish sets the final status of a job. A nil cause marks it successful.
func (s *Store) Finish(ctx context.Context, id int64, cause error) error {
	status, msg := StatusSuccessful, ""
	if cause != nil {
		status, msg = StatusFailed, cause.Error()
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE update_downloads SET status = ?, error = ?, updated_at = ?
		WHERE id = ?
	`, status, dbutil.NullString(msg), time.Now().Unix(), id)
	return err
}

// Delete removes one job row.
func (s *Store) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM update_downloads WHERE id = ?`, id)
	return err
}

const jobColumns = `id, url, path, version_code, status, bytes_total, bytes_done, error, created_at, updated_at`

func scanJob(row interface{ Scan(...any) error }) (Job, error) {
	var j Job
	var errMsg sql.NullString
	var createdAt, updatedAt int64
	if err := row.Scan(&j.ID, &j.URL, &j.Path, &j.VersionCode, &j.Status,
		&j.BytesTotal, &j.BytesDone, &errMsg, &createdAt, &updatedAt); err != nil {
		return Job{}, err
	}
	j.Err = dbutil.NullStringValue(errMsg)
	j.CreatedAt = time.Unix(createdAt, 0)
	j.UpdatedAt = time.Unix(updatedAt, 0)
	return j, nil
}

// Get returns a job by id.
func (s *Store) Get(ctx context.Context, id int64) (*Job, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM update_downloads WHERE id = ?`, id)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Latest returns the most recent job, or nil when there is none.
func (s *Store) Latest(ctx context.Context) (*Job, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM update_downloads ORDER BY id DESC LIMIT 1`)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// List returns every job, newest first.
func (s *Store) List(ctx context.Context) ([]Job, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM update_downloads ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// DeleteAll removes every job row except the running ones and returns the
// removed jobs.
func (s *Store) DeleteAll(ctx context.Context) ([]Job, error) {
	var removed []Job
	err := dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT `+jobColumns+` FROM update_downloads WHERE status != ?`, StatusRunning)
		if err != nil {
			return err
		}
		for rows.Next() {
			j, err := scanJob(rows)
			if err != nil {
				rows.Close()
				return err
			}
			removed = append(removed, j)
		}
		if err := rows.Close(); err != nil {
			return err
		}
		if err := rows.Err(); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM update_downloads WHERE status != ?`, StatusRunning)
		return err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

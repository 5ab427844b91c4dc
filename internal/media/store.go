package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	dbutil "github.com/llehouerou/hymnchtv/internal/db"
	"github.com/llehouerou/hymnchtv/internal/hymnal"
)

// Store persists media records in the per-hymnal tables created by the
// state schema.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStore creates a store on db. A nil logger disables logging.
func NewStore(db *sql.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

func table(t hymnal.Type) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("%w: %s", hymnal.ErrUnsupportedType, t)
	}
	return t.Table(), nil
}

// Get returns the record stored under key, if any.
func (s *Store) Get(ctx context.Context, key Key) (Record, bool, error) {
	tbl, err := table(key.Hymn.Type)
	if err != nil {
		return Record{}, false, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT media_uri, media_file_path FROM `+tbl+`
		WHERE hymn_no = ? AND hymn_fu = ? AND media_type = ?
	`, key.Hymn.Absolute(), key.Hymn.Fu, string(key.Kind))

	var uri, path sql.NullString
	err = row.Scan(&uri, &path)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("get media %s: %w", key, err)
	}

	return Record{
		Key:      key,
		URI:      dbutil.NullStringValue(uri),
		FilePath: dbutil.NullStringValue(path),
	}, true, nil
}

// Put stores rec, replacing any record with the same key.
func (s *Store) Put(ctx context.Context, rec Record) error {
	tbl, err := table(rec.Hymn.Type)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO `+tbl+` (hymn_no, hymn_fu, media_type, media_uri, media_file_path)
		VALUES (?, ?, ?, ?, ?)
	`, rec.Hymn.Absolute(), rec.Hymn.Fu, string(rec.Kind),
		dbutil.NullString(rec.URI), dbutil.NullString(rec.FilePath))
	if err != nil {
		s.logger.Error("failed to store media record",
			zap.String("table", tbl),
			zap.Int("hymn_no", rec.Hymn.Absolute()),
			zap.Error(err))
		return fmt.Errorf("store media %s: %w", rec.Key, err)
	}
	return nil
}

// Delete removes the record stored under key and returns the number of
// rows removed.
func (s *Store) Delete(ctx context.Context, key Key) (int64, error) {
	tbl, err := table(key.Hymn.Type)
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM `+tbl+`
		WHERE hymn_no = ? AND hymn_fu = ? AND media_type = ?
	`, key.Hymn.Absolute(), key.Hymn.Fu, string(key.Kind))
	if err != nil {
		return 0, fmt.Errorf("delete media %s: %w", key, err)
	}
	return res.RowsAffected()
}

// List returns every record of hymnal t ordered by hymn number.
func (s *Store) List(ctx context.Context, t hymnal.Type) ([]Record, error) {
	tbl, err := table(t)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT hymn_no, hymn_fu, media_type, media_uri, media_file_path
		FROM `+tbl+`
		ORDER BY hymn_no ASC, media_type ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list media %s: %w", t, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			no         int
			fu         bool
			kind       string
			uri, fpath sql.NullString
		)
		if err := rows.Scan(&no, &fu, &kind, &uri, &fpath); err != nil {
			return nil, err
		}
		k, err := ParseKind(kind)
		if err != nil {
			s.logger.Warn("skipping media record with unknown kind",
				zap.String("table", tbl), zap.Int("hymn_no", no), zap.String("kind", kind))
			continue
		}
		ref := hymnal.Ref{Type: t, No: no}
		if fu {
			ref = hymnal.FromAbsolute(t, no)
		}
		records = append(records, Record{
			Key:      Key{Hymn: ref, Kind: k},
			URI:      dbutil.NullStringValue(uri),
			FilePath: dbutil.NullStringValue(fpath),
		})
	}
	return records, rows.Err()
}

// ForHymn returns the records attached to one hymn keyed by kind.
func (s *Store) ForHymn(ctx context.Context, ref hymnal.Ref) (map[Kind]Record, error) {
	out := make(map[Kind]Record)
	for _, k := range Kinds {
		rec, ok, err := s.Get(ctx, Key{Hymn: ref, Kind: k})
		if err != nil {
			return nil, err
		}
		if ok {
			out[k] = rec
		}
	}
	return out, nil
}

// Count returns the number of records stored for hymnal t.
func (s *Store) Count(ctx context.Context, t hymnal.Type) (int, error) {
	tbl, err := table(t)
	if err != nil {
		return 0, err
	}
	var n int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+tbl).Scan(&n)
	return n, err
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"video-fetch-be/src/application/requests/entity"
	videos "video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/lib/cerr"

	_ "github.com/mattn/go-sqlite3"
)

const createTableStatement = `
CREATE TABLE IF NOT EXISTS download_requests (
	id            TEXT PRIMARY KEY,
	source_url    TEXT NOT NULL,
	video_id      TEXT NOT NULL,
	format        TEXT NOT NULL,
	quality       TEXT NOT NULL,
	status        TEXT NOT NULL,
	progress      INTEGER NOT NULL,
	download_url  TEXT NOT NULL DEFAULT '',
	error_message TEXT NOT NULL DEFAULT '',
	created_at    TEXT NOT NULL,
	completed_at  TEXT
)`

const selectColumns = `id, source_url, video_id, format, quality, status, progress, download_url, error_message, created_at, completed_at`

var _ entity.RequestStore = SQLiteRequestStore{}

func NewSQLiteRequestStore(path string) (SQLiteRequestStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return SQLiteRequestStore{}, cerr.Field("path", path).Wrap(err).Error("Failed to open SQLite database")
	}

	// sqlite only allows one writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableStatement); err != nil {
		_ = db.Close()
		return SQLiteRequestStore{}, cerr.Field("path", path).Wrap(err).Error("Failed to create download_requests table")
	}

	return SQLiteRequestStore{db: db}, nil
}

type SQLiteRequestStore struct {
	db *sql.DB
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func (s SQLiteRequestStore) Close() error {
	return s.db.Close()
}

func (s SQLiteRequestStore) CreateRequest(ctx context.Context, request entity.DownloadRequest) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO download_requests (`+selectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		request.ID,
		request.SourceURL,
		request.VideoID,
		string(request.Format),
		string(request.Quality),
		string(request.Status),
		request.Progress,
		request.DownloadURL,
		request.ErrorMessage,
		formatTime(request.CreatedAt),
		formatOptionalTime(request.CompletedAt),
	)
	if err != nil {
		return cerr.Field("request_id", request.ID).Wrap(err).Error("Failed to insert download request")
	}

	return nil
}

func (s SQLiteRequestStore) GetRequest(ctx context.Context, requestID string) (entity.DownloadRequest, error) {
	return getRequest(ctx, s.db, requestID)
}

func (s SQLiteRequestStore) UpdateRequest(ctx context.Context, requestID string, updater entity.RequestUpdater) (_ entity.DownloadRequest, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.DownloadRequest{}, cerr.Field("request_id", requestID).Wrap(err).Error("Failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	current, err := getRequest(ctx, tx, requestID)
	if err != nil {
		return entity.DownloadRequest{}, err
	}

	updated, err := updater(current)
	if err != nil {
		return entity.DownloadRequest{}, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE download_requests
		SET status = ?, progress = ?, download_url = ?, error_message = ?, completed_at = ?
		WHERE id = ?`,
		string(updated.Status),
		updated.Progress,
		updated.DownloadURL,
		updated.ErrorMessage,
		formatOptionalTime(updated.CompletedAt),
		requestID,
	)
	if err != nil {
		return entity.DownloadRequest{}, cerr.Field("request_id", requestID).Wrap(err).Error("Failed to update download request")
	}

	if err = tx.Commit(); err != nil {
		return entity.DownloadRequest{}, cerr.Field("request_id", requestID).Wrap(err).Error("Failed to commit download request update")
	}

	return updated, nil
}

func getRequest(ctx context.Context, q queryer, requestID string) (entity.DownloadRequest, error) {
	row := q.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM download_requests WHERE id = ?`, requestID)

	var (
		request     entity.DownloadRequest
		format      string
		quality     string
		status      string
		createdAt   string
		completedAt sql.NullString
	)

	err := row.Scan(
		&request.ID,
		&request.SourceURL,
		&request.VideoID,
		&format,
		&quality,
		&status,
		&request.Progress,
		&request.DownloadURL,
		&request.ErrorMessage,
		&createdAt,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.DownloadRequest{}, entity.ErrRequestNotFound
	}
	if err != nil {
		return entity.DownloadRequest{}, cerr.Field("request_id", requestID).Wrap(err).Error("Failed to read download request")
	}

	request.Format = videos.Format(format)
	request.Quality = videos.Quality(quality)
	request.Status = entity.Status(status)

	request.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return entity.DownloadRequest{}, cerr.Field("created_at", createdAt).Wrap(err).Error("Malformed created_at")
	}

	if completedAt.Valid {
		completed, err := time.Parse(time.RFC3339Nano, completedAt.String)
		if err != nil {
			return entity.DownloadRequest{}, cerr.Field("completed_at", completedAt.String).Wrap(err).Error("Malformed completed_at")
		}
		request.CompletedAt = &completed
	}

	return request, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatOptionalTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}

	return formatTime(*t)
}

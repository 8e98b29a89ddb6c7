package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/yourname/sleepdiary/internal"
	_ "modernc.org/sqlite"
)

// SQLiteStorage persists records in an embedded sqlite database. The schema
// is managed by goose from the embedded migrations.
type SQLiteStorage struct {
	conn   *sql.DB
	logger internal.Logger
}

func NewSQLiteStorage(path string, logger internal.Logger) (*SQLiteStorage, error) {
	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	goose.SetBaseFS(migrationFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return &SQLiteStorage{conn: conn, logger: logger}, nil
}

// Timestamps are stored as RFC 3339 text so rows stay readable with the
// sqlite CLI.
const sqliteTimeLayout = time.RFC3339Nano

func (s *SQLiteStorage) scanRecord(row *sql.Row) (*internal.SleepRecord, error) {
	var r internal.SleepRecord
	var createdAt, updatedAt string
	err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.SleepHours, &r.Mood, &r.SleepScore, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if r.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if r.UpdatedAt, err = time.Parse(sqliteTimeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &r, nil
}

func (s *SQLiteStorage) Create(ctx context.Context, rec *internal.SleepRecord) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO sleep_records (id, user_id, date, sleep_hours, mood, sleep_score, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.Date, rec.SleepHours, rec.Mood, rec.SleepScore,
		rec.CreatedAt.Format(sqliteTimeLayout), rec.UpdatedAt.Format(sqliteTimeLayout))
	if err != nil {
		s.logger.Errorf("failed to insert sleep record: %v", err)
		return err
	}
	return nil
}

func (s *SQLiteStorage) GetByID(ctx context.Context, id string) (*internal.SleepRecord, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, user_id, date, sleep_hours, mood, sleep_score, created_at, updated_at
		 FROM sleep_records WHERE id = ?`, id)
	rec, err := s.scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("failed to query sleep record: %v", err)
		return nil, err
	}
	return rec, nil
}

func (s *SQLiteStorage) ListByUser(ctx context.Context, userID string) ([]internal.SleepRecord, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, user_id, date, sleep_hours, mood, sleep_score, created_at, updated_at
		 FROM sleep_records WHERE user_id = ? ORDER BY date DESC, created_at DESC`, userID)
	if err != nil {
		s.logger.Errorf("failed to query sleep records: %v", err)
		return nil, err
	}
	defer rows.Close()

	records := []internal.SleepRecord{}
	for rows.Next() {
		var r internal.SleepRecord
		var createdAt, updatedAt string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.SleepHours, &r.Mood, &r.SleepScore, &createdAt, &updatedAt); err != nil {
			s.logger.Errorf("failed to scan sleep record: %v", err)
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		if r.UpdatedAt, err = time.Parse(sqliteTimeLayout, updatedAt); err != nil {
			return nil, fmt.Errorf("parse updated_at: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStorage) Update(ctx context.Context, id string, upd internal.SleepRecordUpdate) (*internal.SleepRecord, error) {
	row := s.conn.QueryRowContext(ctx,
		`UPDATE sleep_records
		 SET sleep_hours = COALESCE(?, sleep_hours),
		     mood        = COALESCE(?, mood),
		     sleep_score = COALESCE(?, sleep_score),
		     updated_at  = ?
		 WHERE id = ?
		 RETURNING id, user_id, date, sleep_hours, mood, sleep_score, created_at, updated_at`,
		upd.SleepHours, upd.Mood, upd.SleepScore, time.Now().UTC().Format(sqliteTimeLayout), id)
	rec, err := s.scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("failed to update sleep record: %v", err)
		return nil, err
	}
	return rec, nil
}

func (s *SQLiteStorage) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM sleep_records WHERE id = ?`, id)
	if err != nil {
		s.logger.Errorf("failed to delete sleep record: %v", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQLiteStorage) Close() error {
	return s.conn.Close()
}

var _ SleepRecordRepository = (*SQLiteStorage)(nil)

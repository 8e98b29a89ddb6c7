package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/sleepdiary/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

const sleepRecordColumns = `id, user_id, date, sleep_hours, mood, sleep_score, created_at, updated_at`

func scanSleepRecord(row pgx.Row) (*internal.SleepRecord, error) {
	var r internal.SleepRecord
	err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.SleepHours, &r.Mood, &r.SleepScore, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *PostgresStorage) Create(ctx context.Context, rec *internal.SleepRecord) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO sleep_records (`+sleepRecordColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.UserID, rec.Date, rec.SleepHours, rec.Mood, rec.SleepScore, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert sleep record: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetByID(ctx context.Context, id string) (*internal.SleepRecord, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+sleepRecordColumns+` FROM sleep_records WHERE id = $1`, id)
	rec, err := scanSleepRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to query sleep record: %v", err)
		return nil, err
	}
	return rec, nil
}

func (p *PostgresStorage) ListByUser(ctx context.Context, userID string) ([]internal.SleepRecord, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+sleepRecordColumns+` FROM sleep_records WHERE user_id = $1 ORDER BY date DESC, created_at DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query sleep records: %v", err)
		return nil, err
	}
	defer rows.Close()

	records := []internal.SleepRecord{}
	for rows.Next() {
		var r internal.SleepRecord
		err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.SleepHours, &r.Mood, &r.SleepScore, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			p.logger.Errorf("failed to scan sleep record: %v", err)
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Update runs as a single statement so concurrent updates to the same id
// resolve last-writer-wins under the row lock.
func (p *PostgresStorage) Update(ctx context.Context, id string, upd internal.SleepRecordUpdate) (*internal.SleepRecord, error) {
	row := p.pool.QueryRow(ctx, `UPDATE sleep_records
		SET sleep_hours = COALESCE($2, sleep_hours),
		    mood        = COALESCE($3, mood),
		    sleep_score = COALESCE($4, sleep_score),
		    updated_at  = $5
		WHERE id = $1
		RETURNING `+sleepRecordColumns,
		id, upd.SleepHours, upd.Mood, upd.SleepScore, time.Now().UTC())
	rec, err := scanSleepRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to update sleep record: %v", err)
		return nil, err
	}
	return rec, nil
}

func (p *PostgresStorage) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM sleep_records WHERE id = $1`, id)
	if err != nil {
		p.logger.Errorf("failed to delete sleep record: %v", err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

var _ SleepRecordRepository = (*PostgresStorage)(nil)

package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/dbx"
	"github.com/itnewcomer/Memento/internal/models"
)

// PostgresRepository stores records in PostgreSQL through the pgx stdlib
// driver. Nested fields are JSONB.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const pgColumns = `day, rating, emotions, emotion_notes, emotion_tags, updated_at`

func (r *PostgresRepository) Upsert(ctx context.Context, rec *models.JournalRecord) error {
	f, err := encodeFields(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record[%s]: %w", rec.Day, err)
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO records (` + pgColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (day) DO UPDATE SET
			rating        = EXCLUDED.rating,
			emotions      = EXCLUDED.emotions,
			emotion_notes = EXCLUDED.emotion_notes,
			emotion_tags  = EXCLUDED.emotion_tags,
			updated_at    = EXCLUDED.updated_at;`

	_, err = r.db.ExecContext(ctx, query,
		rec.Day.Time(time.UTC), rec.Rating, f.emotions, f.notes, f.tags, rec.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByDay(ctx context.Context, day calendarx.Day) (*models.JournalRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+pgColumns+` FROM records WHERE day = $1;`, day.Time(time.UTC))
	rec, err := scanPostgres(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) DeleteByDay(ctx context.Context, day calendarx.Day) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE day = $1;`, day.Time(time.UTC))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.JournalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+pgColumns+` FROM records ORDER BY day ASC;`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collectPostgres(rows)
}

func (r *PostgresRepository) ListRange(ctx context.Context, from, to calendarx.Day) ([]models.JournalRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+pgColumns+` FROM records WHERE day BETWEEN $1 AND $2 ORDER BY day ASC;`,
		from.Time(time.UTC), to.Time(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collectPostgres(rows)
}

func scanPostgres(s rowScanner) (*models.JournalRecord, error) {
	var (
		day time.Time
		f   encodedFields
		rec models.JournalRecord
	)
	if err := s.Scan(&day, &rec.Rating, &f.emotions, &f.notes, &f.tags, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.Day = calendarx.DayOf(day.UTC())
	decodeFields(&rec, f)
	return &rec, nil
}

func collectPostgres(rows *sql.Rows) ([]models.JournalRecord, error) {
	defer rows.Close()

	result := make([]models.JournalRecord, 0)
	for rows.Next() {
		rec, err := scanPostgres(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

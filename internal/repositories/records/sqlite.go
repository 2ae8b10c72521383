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

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const sqliteColumns = `day, rating, emotions, emotion_notes, emotion_tags, updated_at`

func (r *SQLiteRepository) Upsert(ctx context.Context, rec *models.JournalRecord) error {
	f, err := encodeFields(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record[%s]: %w", rec.Day, err)
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO records (`+sqliteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			rating        = excluded.rating,
			emotions      = excluded.emotions,
			emotion_notes = excluded.emotion_notes,
			emotion_tags  = excluded.emotion_tags,
			updated_at    = excluded.updated_at
	`, rec.Day.String(), rec.Rating, string(f.emotions), string(f.notes), string(f.tags),
		rec.UpdatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert record[%s]: %w", rec.Day, err)
	}
	return nil
}

func (r *SQLiteRepository) GetByDay(ctx context.Context, day calendarx.Day) (*models.JournalRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sqliteColumns+` FROM records WHERE day = ?`, day.String())
	rec, err := scanSQLite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record[%s]: %w", day, err)
	}
	return rec, nil
}

func (r *SQLiteRepository) DeleteByDay(ctx context.Context, day calendarx.Day) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE day = ?`, day.String())
	if err != nil {
		return fmt.Errorf("failed to delete record[%s]: %w", day, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete record[%s]: %w", day, err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.JournalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sqliteColumns+` FROM records ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return collectSQLite(rows)
}

func (r *SQLiteRepository) ListRange(ctx context.Context, from, to calendarx.Day) ([]models.JournalRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sqliteColumns+` FROM records WHERE day BETWEEN ? AND ? ORDER BY day ASC`,
		from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list records %s..%s: %w", from, to, err)
	}
	return collectSQLite(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLite(s rowScanner) (*models.JournalRecord, error) {
	var (
		day, updated string
		emotions     string
		notes, tags  string
		rec          models.JournalRecord
	)
	if err := s.Scan(&day, &rec.Rating, &emotions, &notes, &tags, &updated); err != nil {
		return nil, err
	}
	d, err := calendarx.ParseDay(day)
	if err != nil {
		return nil, err
	}
	rec.Day = d
	// a malformed timestamp only loses the informational field
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	decodeFields(&rec, encodedFields{emotions: []byte(emotions), notes: []byte(notes), tags: []byte(tags)})
	return &rec, nil
}

func collectSQLite(rows *sql.Rows) ([]models.JournalRecord, error) {
	defer rows.Close()

	result := make([]models.JournalRecord, 0)
	for rows.Next() {
		rec, err := scanSQLite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate record rows: %w", err)
	}
	return result, nil
}

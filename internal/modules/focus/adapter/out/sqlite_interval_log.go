package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"najah/internal/modules/focus/domain"
	focusout "najah/internal/modules/focus/port/out"
)

const intervalTable = "focus_intervals"

type SQLiteIntervalLog struct {
	db *sql.DB
}

func NewSQLiteIntervalLog(db *sql.DB) (focusout.IntervalLog, error) {
	l := &SQLiteIntervalLog{db: db}
	if err := l.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *SQLiteIntervalLog) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS focus_intervals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  mode TEXT NOT NULL,
  duration_seconds INTEGER NOT NULL,
  completed_at TEXT NOT NULL
);
`
	if _, err := l.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create focus_intervals table: %w", err)
	}
	return nil
}

func (l *SQLiteIntervalLog) Append(ctx context.Context, record domain.IntervalRecord) error {
	query, args, err := squirrel.Insert(intervalTable).
		Columns("mode", "duration_seconds", "completed_at").
		Values(string(record.Mode), record.DurationSec, record.CompletedAt.UTC().Format(time.RFC3339)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build interval insert: %w", err)
	}
	if _, err := l.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append interval: %w", err)
	}
	return nil
}

func (l *SQLiteIntervalLog) Totals(ctx context.Context, since time.Time) (domain.Totals, error) {
	sel := squirrel.Select("mode", "COUNT(*)", "COALESCE(SUM(duration_seconds), 0)").
		From(intervalTable).
		GroupBy("mode")
	if !since.IsZero() {
		sel = sel.Where(squirrel.GtOrEq{"completed_at": since.UTC().Format(time.RFC3339)})
	}
	query, args, err := sel.ToSql()
	if err != nil {
		return domain.Totals{}, fmt.Errorf("build interval totals: %w", err)
	}
	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.Totals{}, fmt.Errorf("query intervals: %w", err)
	}
	defer rows.Close()

	out := domain.Totals{}
	for rows.Next() {
		var mode string
		var count, seconds int
		if err := rows.Scan(&mode, &count, &seconds); err != nil {
			return domain.Totals{}, fmt.Errorf("scan intervals: %w", err)
		}
		switch domain.Mode(mode) {
		case domain.ModeWork:
			out.WorkIntervals = count
			out.FocusSeconds = seconds
		case domain.ModeBreak:
			out.BreakIntervals = count
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Totals{}, fmt.Errorf("iterate intervals: %w", err)
	}
	return out, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/shenikar/sentinel_monitoring_system/internal/service"
)

type AlertJournalRepository struct {
	db *pgxpool.Pool
}

func NewAlertJournalRepository(db *pgxpool.Pool) service.AlertJournal {
	return &AlertJournalRepository{db: db}
}

// SaveAlert записывает наблюдаемую тревогу в журнал. Запись ведется по
// alert_id: повторное появление той же тревоги обновляет статус и
// источник, а не плодит дубликаты.
func (r *AlertJournalRepository) SaveAlert(ctx context.Context, alert models.AlertRecord, source string) error {
	query := `
		INSERT INTO alert_journal (alert_id, device_id, type, severity, status, message, source, event_ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (alert_id) DO UPDATE SET
			severity = EXCLUDED.severity,
			status = EXCLUDED.status,
			message = EXCLUDED.message,
			source = EXCLUDED.source,
			event_ts = EXCLUDED.event_ts;
	`
	_, err := r.db.Exec(ctx, query,
		alert.AlertID,
		alert.DeviceID,
		alert.Type,
		alert.Severity,
		alert.EffectiveStatus(),
		alert.Message,
		source,
		alert.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save alert journal entry: %w", err)
	}
	return nil
}

// ListRecent возвращает последние записи журнала, свежие первыми
func (r *AlertJournalRepository) ListRecent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	query := `
		SELECT
			id,
			alert_id,
			device_id,
			type,
			severity,
			status,
			message,
			source,
			event_ts,
			recorded_at
		FROM alert_journal
		ORDER BY recorded_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var entry models.JournalEntry
		err := rows.Scan(
			&entry.ID,
			&entry.AlertID,
			&entry.DeviceID,
			&entry.Type,
			&entry.Severity,
			&entry.Status,
			&entry.Message,
			&entry.Source,
			&entry.EventTime,
			&entry.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error journal list iteration: %w", err)
	}
	return entries, nil
}

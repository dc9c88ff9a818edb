package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"launch-dashboard-service/internal/core/domain"
	output "launch-dashboard-service/internal/core/ports/output"
)

// DefaultTable holds the launch records when no table is configured.
const DefaultTable = "spacex_launches"

type launchRecordRepo struct {
	pool  *pgxpool.Pool
	table pgx.Identifier
}

// NewLaunchRecordRepository creates a DatasetSource reading from table, which
// may be schema-qualified ("analytics.spacex_launches").
func NewLaunchRecordRepository(pool *pgxpool.Pool, table string) output.DatasetSource {
	return &launchRecordRepo{pool: pool, table: tableIdentifier(table)}
}

func tableIdentifier(table string) pgx.Identifier {
	table = strings.TrimSpace(table)
	if table == "" {
		table = DefaultTable
	}
	return pgx.Identifier(strings.Split(table, "."))
}

func (r *launchRecordRepo) Fetch(ctx context.Context) ([]domain.LaunchRecord, error) {
	query := fmt.Sprintf(`
		SELECT
			flight_number, launch_site, class, payload_mass_kg,
			COALESCE(booster_version, ''), booster_version_category
		FROM %s
		ORDER BY flight_number
	`, r.table.Sanitize())

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list launch records: %w", err)
	}
	defer rows.Close()

	var records []domain.LaunchRecord
	for rows.Next() {
		var rec domain.LaunchRecord
		if err := rows.Scan(
			&rec.FlightNumber, &rec.LaunchSite, &rec.Class, &rec.PayloadMassKg,
			&rec.BoosterVersion, &rec.BoosterVersionCategory,
		); err != nil {
			return nil, fmt.Errorf("scan launch record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate launch records: %w", err)
	}

	return records, nil
}

func (r *launchRecordRepo) Describe() string {
	return "postgres:" + strings.Join(r.table, ".")
}

package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
)

type ReportsStorage struct {
	db *PostgresDB
}

func NewReportsStorage(db *PostgresDB) *ReportsStorage {
	return &ReportsStorage{
		db: db,
	}
}

func (s *ReportsStorage) StoreReport(ctx context.Context, report *domain.PhishReport) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO phish_reports (id, employee_email, email_message, received_at)
		 VALUES ($1, $2, $3, $4)`,
		report.ID,
		report.EmployeeEmail,
		report.EmailMessage,
		report.ReceivedAt,
	)

	return err
}

func (s *ReportsStorage) GetReport(ctx context.Context, reportID uuid.UUID) (*domain.PhishReport, error) {
	var report domain.PhishReport
	err := s.db.QueryRow(ctx,
		`SELECT id, employee_email, email_message, received_at
		 FROM phish_reports WHERE id = $1`,
		reportID,
	).Scan(&report.ID, &report.EmployeeEmail, &report.EmailMessage, &report.ReceivedAt)

	if err != nil {
		return nil, err
	}

	return &report, nil
}

// ListRecent returns the newest reports first, bounded by limit.
func (s *ReportsStorage) ListRecent(ctx context.Context, limit int) ([]domain.PhishReport, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, employee_email, email_message, received_at
		 FROM phish_reports
		 ORDER BY received_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.PhishReport
	for rows.Next() {
		var report domain.PhishReport
		err := rows.Scan(&report.ID, &report.EmployeeEmail, &report.EmailMessage, &report.ReceivedAt)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
)

type ReportsStorage interface {
	StoreReport(ctx context.Context, report *domain.PhishReport) error
	GetReport(ctx context.Context, reportID uuid.UUID) (*domain.PhishReport, error)
	ListRecent(ctx context.Context, limit int) ([]domain.PhishReport, error)
}

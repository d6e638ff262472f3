package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/rentadmin/internal/client/api"
	"github.com/dmitrijs2005/rentadmin/internal/client/models"
)

// ReportsService handles abuse reports. Reports are never created or
// deleted from the dashboard; they only move through the status workflow.
type ReportsService interface {
	List(ctx context.Context) ([]models.Report, error)
	SetStatus(ctx context.Context, id, status string) error
}

type reportsService struct {
	api *api.Client
}

func NewReportsService(api *api.Client) ReportsService {
	return &reportsService{api: api}
}

func (s *reportsService) List(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := s.api.Get(ctx, "/report/getAll", &reports); err != nil {
		return nil, fmt.Errorf("fetching reports: %w", err)
	}
	return reports, nil
}

// SetStatus transitions a report via the status-only PATCH route. The URL
// segment is the lowercased status value (".../status/processing").
func (s *reportsService) SetStatus(ctx context.Context, id, status string) error {
	path := "/report/" + id + "/status/" + strings.ToLower(status)
	if err := s.api.Patch(ctx, path, nil); err != nil {
		return fmt.Errorf("setting report %s to %s: %w", id, status, err)
	}
	return nil
}

package services

import (
	"context"
	"database/sql"

	"github.com/dbelyakov/finbook/internal/server/config"
	"github.com/dbelyakov/finbook/internal/server/export"
	"github.com/dbelyakov/finbook/internal/server/models"
	"github.com/dbelyakov/finbook/internal/server/repositories/repomanager"
)

// ReportService aggregates entries into profit figures and report rows for
// the CSV/XLSX renderers. It performs no formatting itself.
type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewReportService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *ReportService {
	return &ReportService{db: db, repomanager: m}
}

// ComputeProfit sums revenue and cost over all entries of the year and
// returns profit = totalRevenue - totalCost. common.ErrorNotFound if the
// year does not exist.
func (s *ReportService) ComputeProfit(ctx context.Context, yearID int64) (*models.ProfitReport, error) {
	if _, err := s.repomanager.Years(s.db).GetByID(ctx, yearID); err != nil {
		return nil, err
	}

	entries, err := s.repomanager.Entries(s.db).ListByYear(ctx, yearID)
	if err != nil {
		return nil, err
	}

	report := &models.ProfitReport{}
	for _, e := range entries {
		report.TotalRevenue += e.Revenue
		report.TotalCost += e.Cost
	}
	report.Profit = report.TotalRevenue - report.TotalCost

	return report, nil
}

// ReportRows returns one row per entry of the year, with per-row profit and
// the resolved category name, plus the year totals. The renderers consume
// this output verbatim.
func (s *ReportService) ReportRows(ctx context.Context, yearID int64) (*models.Year, []export.Row, *models.ProfitReport, error) {
	year, err := s.repomanager.Years(s.db).GetByID(ctx, yearID)
	if err != nil {
		return nil, nil, nil, err
	}

	entries, err := s.repomanager.Entries(s.db).ListByYear(ctx, yearID)
	if err != nil {
		return nil, nil, nil, err
	}

	cats, err := s.repomanager.Categories(s.db).List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	catNames := make(map[int64]string, len(cats))
	for _, c := range cats {
		catNames[c.ID] = c.Name
	}

	report := &models.ProfitReport{}
	rows := make([]export.Row, 0, len(entries))
	for _, e := range entries {
		report.TotalRevenue += e.Revenue
		report.TotalCost += e.Cost
		rows = append(rows, export.Row{
			Revenue:  e.Revenue,
			Cost:     e.Cost,
			Date:     e.Date,
			Profit:   e.Revenue - e.Cost,
			Category: catNames[e.CategoryID],
		})
	}
	report.Profit = report.TotalRevenue - report.TotalCost

	return year, rows, report, nil
}

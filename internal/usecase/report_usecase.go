package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"slick_jobs/internal/domain/aggregate"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase/interfaces"
)

var ErrInvalidRange = errors.New("invalid report range")

// IReportUseCase answers reporting queries from the maintained aggregate
// indexes. It never scans the job table.
type IReportUseCase interface {
	GetReportsData(ctx context.Context, actor entities.Actor, start, end time.Time, technicianID string) (entities.ReportsData, error)
}

type ReportUseCase struct {
	index       interfaces.IAggregateIndex
	catalog     interfaces.ICatalogStore
	technicians interfaces.ITechnicianDirectory
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(index interfaces.IAggregateIndex, catalog interfaces.ICatalogStore, technicians interfaces.ITechnicianDirectory) *ReportUseCase {
	return &ReportUseCase{index: index, catalog: catalog, technicians: technicians}
}

func (u *ReportUseCase) GetReportsData(ctx context.Context, actor entities.Actor, start, end time.Time, technicianID string) (entities.ReportsData, error) {
	if end.Before(start) {
		return entities.ReportsData{}, ErrInvalidRange
	}

	// Technicians only ever see their own leaderboard slice. An actor with
	// no identity gets no slice at all, never the full leaderboard.
	technicianID = strings.TrimSpace(technicianID)
	restrictToSelf := actor.Role == entities.RoleTechnician
	if restrictToSelf {
		technicianID = strings.TrimSpace(actor.ID)
	}

	fromSort, toSort := aggregate.SortRange(start, end)

	revenue, err := u.revenueOverTime(ctx, fromSort, toSort)
	if err != nil {
		return entities.ReportsData{}, err
	}

	services, err := u.servicePerformance(ctx, fromSort, toSort)
	if err != nil {
		return entities.ReportsData{}, err
	}

	technicians := []entities.TechnicianPerformanceRow{}
	if !restrictToSelf || technicianID != "" {
		technicians, err = u.technicianLeaderboard(ctx, fromSort, toSort, technicianID)
		if err != nil {
			return entities.ReportsData{}, err
		}
	}

	return entities.ReportsData{Revenue: revenue, Services: services, Technicians: technicians}, nil
}

func (u *ReportUseCase) revenueOverTime(ctx context.Context, fromSort, toSort string) ([]entities.RevenuePoint, error) {
	entries, err := u.index.Range(ctx, aggregate.Partition(aggregate.IndexJobStats, string(entities.JobStatusCompleted)), fromSort, toSort)
	if err != nil {
		return nil, errors.Wrap(err, "scanning job stats")
	}

	buckets := make(map[time.Time]*entities.RevenuePoint)
	for _, e := range entries {
		day := e.At.UTC().Truncate(24 * time.Hour)
		p, ok := buckets[day]
		if !ok {
			p = &entities.RevenuePoint{Day: day}
			buckets[day] = p
		}
		p.Revenue += e.Amount
		p.CompletedJobs++
	}

	points := make([]entities.RevenuePoint, 0, len(buckets))
	for _, p := range buckets {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day.Before(points[j].Day) })
	return points, nil
}

func (u *ReportUseCase) servicePerformance(ctx context.Context, fromSort, toSort string) ([]entities.ServicePerformanceRow, error) {
	services, err := u.catalog.ListServices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing services")
	}

	rows := make([]entities.ServicePerformanceRow, 0, len(services))
	for _, svc := range services {
		entries, err := u.index.Range(ctx, aggregate.Partition(aggregate.IndexServicePerformance, svc.ID), fromSort, toSort)
		if err != nil {
			return nil, errors.Wrapf(err, "scanning service %s", svc.ID)
		}
		if len(entries) == 0 {
			continue
		}

		row := entities.ServicePerformanceRow{ServiceID: svc.ID, ServiceName: svc.Name}
		for _, e := range entries {
			row.Revenue += e.Amount
			row.JobCount++
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	return rows, nil
}

func (u *ReportUseCase) technicianLeaderboard(ctx context.Context, fromSort, toSort, technicianID string) ([]entities.TechnicianPerformanceRow, error) {
	var ids []string
	if technicianID != "" {
		ids = []string{technicianID}
	} else {
		all, err := u.technicians.ListTechnicianIDs(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "listing technicians")
		}
		ids = all
	}

	rows := make([]entities.TechnicianPerformanceRow, 0, len(ids))
	for _, id := range ids {
		entries, err := u.index.Range(ctx, aggregate.Partition(aggregate.IndexTechnicianPerformance, id), fromSort, toSort)
		if err != nil {
			return nil, errors.Wrapf(err, "scanning technician %s", id)
		}
		if len(entries) == 0 {
			continue
		}

		row := entities.TechnicianPerformanceRow{TechnicianID: id}
		for _, e := range entries {
			row.Revenue += e.Amount
			row.CompletedJobs++
		}
		if row.CompletedJobs > 0 {
			row.AverageJobValue = row.Revenue / float64(row.CompletedJobs)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	return rows, nil
}

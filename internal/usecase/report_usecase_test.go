package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"slick_jobs/internal/domain/aggregate"
	"slick_jobs/internal/domain/entities"
	mock_interfaces "slick_jobs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func statsEntry(at time.Time, amount float64) aggregate.Entry {
	return aggregate.Entry{
		Partition: aggregate.Partition(aggregate.IndexJobStats, string(entities.JobStatusCompleted)),
		Sort:      aggregate.SortKey(at, "job-x"),
		JobID:     "job-x",
		At:        at,
		Amount:    amount,
	}
}

func TestReportUseCase_GetReportsData(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	t.Run("inverted range", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, nil)
		_, err := uc.GetReportsData(context.Background(), entities.Actor{Role: entities.RoleAdmin}, end, start, "")
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("revenue buckets by day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		index := mock_interfaces.NewMockIAggregateIndex(ctrl)
		catalog := mock_interfaces.NewMockICatalogStore(ctrl)
		directory := mock_interfaces.NewMockITechnicianDirectory(ctrl)
		uc := NewReportUseCase(index, catalog, directory)

		day1 := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)
		day1b := time.Date(2026, 8, 10, 17, 0, 0, 0, time.UTC)
		day2 := time.Date(2026, 8, 12, 11, 0, 0, 0, time.UTC)

		index.EXPECT().Range(gomock.Any(), aggregate.Partition(aggregate.IndexJobStats, "completed"), gomock.Any(), gomock.Any()).
			Return([]aggregate.Entry{statsEntry(day1, 100), statsEntry(day1b, 50), statsEntry(day2, 200)}, nil)
		catalog.EXPECT().ListServices(gomock.Any()).Return(nil, nil)
		directory.EXPECT().ListTechnicianIDs(gomock.Any()).Return(nil, nil)

		data, err := uc.GetReportsData(context.Background(), entities.Actor{Role: entities.RoleAdmin}, start, end, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data.Revenue) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(data.Revenue))
		}
		first := data.Revenue[0]
		if first.Revenue != 150 || first.CompletedJobs != 2 {
			t.Fatalf("expected first bucket 150/2, got %v/%d", first.Revenue, first.CompletedJobs)
		}
		if !data.Revenue[1].Day.After(first.Day) {
			t.Fatalf("expected ascending day order")
		}
	})

	t.Run("service rows skip empty and sort by revenue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		index := mock_interfaces.NewMockIAggregateIndex(ctrl)
		catalog := mock_interfaces.NewMockICatalogStore(ctrl)
		directory := mock_interfaces.NewMockITechnicianDirectory(ctrl)
		uc := NewReportUseCase(index, catalog, directory)

		at := time.Date(2026, 8, 5, 10, 0, 0, 0, time.UTC)

		index.EXPECT().Range(gomock.Any(), aggregate.Partition(aggregate.IndexJobStats, "completed"), gomock.Any(), gomock.Any()).Return(nil, nil)
		catalog.EXPECT().ListServices(gomock.Any()).Return([]entities.Service{
			{ID: "svc-wash", Name: "Exterior Wash"},
			{ID: "svc-idle", Name: "Never Sold"},
			{ID: "svc-detail", Name: "Full Detail"},
		}, nil)
		index.EXPECT().Range(gomock.Any(), aggregate.Partition(aggregate.IndexServicePerformance, "svc-wash"), gomock.Any(), gomock.Any()).
			Return([]aggregate.Entry{{At: at, Amount: 49}}, nil)
		index.EXPECT().Range(gomock.Any(), aggregate.Partition(aggregate.IndexServicePerformance, "svc-idle"), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		index.EXPECT().Range(gomock.Any(), aggregate.Partition(aggregate.IndexServicePerformance, "svc-detail"), gomock.Any(), gomock.Any()).
			Return([]aggregate.Entry{{At: at, Amount: 299}, {At: at, Amount: 299}}, nil)
		directory.EXPECT().ListTechnicianIDs(gomock.Any()).Return(nil, nil)

		data, err := uc.GetReportsData(context.Background(), entities.Actor{Role: entities.RoleAdmin}, start, end, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data.Services) != 2 {
			t.Fatalf("expected idle service skipped, got %d rows", len(data.Services))
		}
		if data.Services[0].ServiceID != "svc-detail" || data.Services[0].Revenue != 598 || data.Services[0].JobCount != 2 {
			t.Fatalf("unexpected top row: %+v", data.Services[0])
		}
	})

	t.Run("technician actors see only themselves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		index := mock_interfaces.NewMockIAggregateIndex(ctrl)
		catalog := mock_interfaces.NewMockICatalogStore(ctrl)
		directory := mock_interfaces.NewMockITechnicianDirectory(ctrl)
		uc := NewReportUseCase(index, catalog, directory)

		at := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)

		index.EXPECT().Range(gomock.Any(), aggregate.Partition(aggregate.IndexJobStats, "completed"), gomock.Any(), gomock.Any()).Return(nil, nil)
		catalog.EXPECT().ListServices(gomock.Any()).Return(nil, nil)
		// Directory is never consulted; the requested filter is overridden by
		// the actor's own id.
		index.EXPECT().Range(gomock.Any(), aggregate.Partition(aggregate.IndexTechnicianPerformance, "tech-2"), gomock.Any(), gomock.Any()).
			Return([]aggregate.Entry{{At: at, Amount: 150}, {At: at, Amount: 150}}, nil)

		actor := entities.Actor{ID: "tech-2", Role: entities.RoleTechnician}
		data, err := uc.GetReportsData(context.Background(), actor, start, end, "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data.Technicians) != 1 || data.Technicians[0].TechnicianID != "tech-2" {
			t.Fatalf("expected own slice only, got %+v", data.Technicians)
		}
		row := data.Technicians[0]
		if row.Revenue != 300 || row.CompletedJobs != 2 || row.AverageJobValue != 150 {
			t.Fatalf("unexpected leaderboard math: %+v", row)
		}
	})

	t.Run("technician actor without id sees no leaderboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		index := mock_interfaces.NewMockIAggregateIndex(ctrl)
		catalog := mock_interfaces.NewMockICatalogStore(ctrl)
		directory := mock_interfaces.NewMockITechnicianDirectory(ctrl)
		uc := NewReportUseCase(index, catalog, directory)

		index.EXPECT().Range(gomock.Any(), aggregate.Partition(aggregate.IndexJobStats, "completed"), gomock.Any(), gomock.Any()).Return(nil, nil)
		catalog.EXPECT().ListServices(gomock.Any()).Return(nil, nil)
		// No directory listing and no technician scans: an anonymous request
		// must not fall through to the full leaderboard.

		actor := entities.Actor{Role: entities.RoleTechnician}
		data, err := uc.GetReportsData(context.Background(), actor, start, end, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data.Technicians) != 0 {
			t.Fatalf("expected empty leaderboard, got %+v", data.Technicians)
		}
	})
}

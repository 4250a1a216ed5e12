package service

import (
	"context"

	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/internal/domain/repository"
	"github.com/invinci009/rmw/pkg/pagination"
)

// DashboardService aggregates workshop statistics for the admin overview
type DashboardService struct {
	bookingRepo repository.BookingRepository
	jobCardRepo repository.JobCardRepository
	invoiceRepo repository.InvoiceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	bookingRepo repository.BookingRepository,
	jobCardRepo repository.JobCardRepository,
	invoiceRepo repository.InvoiceRepository,
) *DashboardService {
	return &DashboardService{
		bookingRepo: bookingRepo,
		jobCardRepo: jobCardRepo,
		invoiceRepo: invoiceRepo,
	}
}

// DashboardStats holds the admin overview numbers
type DashboardStats struct {
	PendingBookings    int64                        `json:"pending_bookings"`
	JobCardsByStatus   map[enum.JobCardStatus]int64 `json:"job_cards_by_status"`
	ActiveJobCards     int64                        `json:"active_job_cards"`
	RevenueCollected   float64                      `json:"revenue_collected"`
	OutstandingBalance float64                      `json:"outstanding_balance"`
}

// GetStats collects the dashboard counters
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		JobCardsByStatus: make(map[enum.JobCardStatus]int64),
	}

	pendingStatus := enum.BookingStatusPending
	_, pendingCount, err := s.bookingRepo.List(ctx, &repository.BookingFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1},
		Status:     &pendingStatus,
	})
	if err != nil {
		return nil, err
	}
	stats.PendingBookings = pendingCount

	for _, status := range enum.JobCardStatuses {
		count, err := s.jobCardRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		stats.JobCardsByStatus[status] = count
		if status != enum.JobCardStatusDelivered {
			stats.ActiveJobCards += count
		}
	}

	revenue, err := s.invoiceRepo.SumPaidAmount(ctx)
	if err != nil {
		return nil, err
	}
	stats.RevenueCollected = revenue

	outstanding, err := s.invoiceRepo.SumBalanceDue(ctx)
	if err != nil {
		return nil, err
	}
	stats.OutstandingBalance = outstanding

	return stats, nil
}

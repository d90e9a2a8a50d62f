package services

import (
	"context"
	"errors"
	"storefront/internal/mocks"
	"storefront/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

func TestSweepPurgesDueOrders(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	now := time.Now()

	orderRepo.On("FindDueForPurge", now).Return([]models.Order{
		{ID: 1, Status: models.StatusDelivered},
		{ID: 2, Status: models.StatusDelivered},
	}, nil)
	orderRepo.On("PurgeDelivered", uint(1)).Return(true, nil)
	orderRepo.On("PurgeDelivered", uint(2)).Return(true, nil)

	svc := NewCleanupService(orderRepo, time.Minute)
	svc.Sweep(now)

	orderRepo.AssertExpectations(t)
}

func TestSweepSkipsOrdersThatMovedAwayFromDelivered(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	now := time.Now()

	// The delete predicate re-checks status; a false return means the order
	// changed between the query and the delete and must survive.
	orderRepo.On("FindDueForPurge", now).Return([]models.Order{{ID: 3}}, nil)
	orderRepo.On("PurgeDelivered", uint(3)).Return(false, nil)

	svc := NewCleanupService(orderRepo, time.Minute)
	svc.Sweep(now)

	orderRepo.AssertExpectations(t)
}

func TestSweepSwallowsErrorsAndContinues(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	now := time.Now()

	orderRepo.On("FindDueForPurge", now).Return([]models.Order{{ID: 4}, {ID: 5}}, nil)
	orderRepo.On("PurgeDelivered", uint(4)).Return(false, errors.New("deadlock detected"))
	orderRepo.On("PurgeDelivered", uint(5)).Return(true, nil)

	svc := NewCleanupService(orderRepo, time.Minute)
	svc.Sweep(now)

	orderRepo.AssertExpectations(t)
}

func TestSweepStopsWhenQueryFails(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	now := time.Now()

	orderRepo.On("FindDueForPurge", now).Return(nil, errors.New("connection refused"))

	svc := NewCleanupService(orderRepo, time.Minute)
	svc.Sweep(now)

	orderRepo.AssertNotCalled(t, "PurgeDelivered", mock.Anything)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	svc := NewCleanupService(orderRepo, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

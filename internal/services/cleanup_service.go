package services

import (
	"context"
	"log"
	"storefront/internal/repository"
	"time"
)

// CleanupService deletes delivered orders once their purge due time has
// passed. It runs unattended; every failure is logged and dropped, there is
// no caller to surface it to and the next sweep retries naturally.
type CleanupService struct {
	orderRepo repository.OrderRepository
	interval  time.Duration
}

func NewCleanupService(orderRepo repository.OrderRepository, interval time.Duration) *CleanupService {
	return &CleanupService{orderRepo: orderRepo, interval: interval}
}

// Run blocks until ctx is cancelled, sweeping on a fixed interval.
func (s *CleanupService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("Order cleanup sweep started (interval %s)", s.interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("Order cleanup sweep stopped")
			return
		case <-ticker.C:
			s.Sweep(time.Now())
		}
	}
}

// Sweep deletes every order that is still Delivered and past due. Orders
// whose status changed since the due time was stamped fail the delete
// predicate and are left alone.
func (s *CleanupService) Sweep(now time.Time) {
	due, err := s.orderRepo.FindDueForPurge(now)
	if err != nil {
		log.Printf("Cleanup sweep query failed: %v", err)
		return
	}

	for _, order := range due {
		purged, err := s.orderRepo.PurgeDelivered(order.ID)
		if err != nil {
			log.Printf("Auto-delete error for order %d: %v", order.ID, err)
			continue
		}
		if purged {
			log.Printf("Order %d auto-deleted after delivery grace period", order.ID)
		}
	}
}

package notification

import (
	"context"
	"log"
	"time"
)

// Scheduler periodically re-runs the expiry check. Default interval is 24h;
// override with NOTIFY_INTERVAL_HOURS.
type Scheduler struct {
	service  NotificationService
	interval time.Duration
	stop     chan struct{}
}

func NewScheduler(service NotificationService, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{
		service:  service,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.service.RunExpiryCheck(context.Background()); err != nil {
					log.Printf("expiry check failed: %v", err)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	close(s.stop)
}

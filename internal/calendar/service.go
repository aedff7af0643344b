package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"studiobook/internal/booking"
	"studiobook/internal/logger"
	"studiobook/internal/metrics"
)

const (
	queueKey  = "calendar:sync"
	failedKey = "calendar:sync:failed"
)

// SyncJob is one pending push to the external calendar feed.
type SyncJob struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"` // "create" or "delete"
	BookingID int       `json:"booking_id"`
	Studio    string    `json:"studio,omitempty"`
	Date      string    `json:"date,omitempty"`
	StartTime string    `json:"start_time,omitempty"`
	EndTime   string    `json:"end_time,omitempty"`
	Tries     int       `json:"tries"`
	Created   time.Time `json:"created"`
}

// Service pushes booking changes to an external calendar webhook through a
// redis-backed queue. Sync is best-effort: a lost job never affects bookings.
type Service struct {
	redis      *redis.Client
	webhookURL string
	client     *http.Client
}

func New(redisAddr, webhookURL string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Service) EnqueueCreate(ctx context.Context, b *booking.Booking, studioName string) error {
	job := SyncJob{
		ID:        uuid.NewString(),
		Action:    "create",
		BookingID: b.ID,
		Studio:    studioName,
		Date:      b.SlotDate.Format("2006-01-02"),
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Created:   time.Now(),
	}
	return s.enqueue(ctx, job)
}

func (s *Service) EnqueueDelete(ctx context.Context, bookingID int) error {
	job := SyncJob{
		ID:        uuid.NewString(),
		Action:    "delete",
		BookingID: bookingID,
		Created:   time.Now(),
	}
	return s.enqueue(ctx, job)
}

func (s *Service) enqueue(ctx context.Context, job SyncJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal calendar job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue calendar %s for booking %d: %v", job.Action, job.BookingID, err)
		return err
	}

	logger.Infof("Calendar %s queued for booking %d", job.Action, job.BookingID)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Calendar sync worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Calendar sync worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job SyncJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad calendar job data: %v", err)
		return
	}

	job.Tries++
	if err := s.sendNow(ctx, job); err != nil {
		logger.Errorf("Calendar %s for booking %d failed: %v", job.Action, job.BookingID, err)

		if job.Tries < 3 {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying calendar %s for booking %d (attempt %d)", job.Action, job.BookingID, job.Tries+1)
		} else {
			metrics.RecordCalendarJob(job.Action, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordCalendarJob(job.Action, "sent")
	logger.Infof("Calendar %s sent for booking %d", job.Action, job.BookingID)
}

func (s *Service) sendNow(ctx context.Context, job SyncJob) error {
	if s.webhookURL == "" {
		logger.Debugf("No calendar webhook configured, dropping %s for booking %d", job.Action, job.BookingID)
		return nil
	}

	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("calendar webhook returned %d", resp.StatusCode)
	}
	return nil
}

func (s *Service) saveFailed(job SyncJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, data)
	logger.Errorf("Calendar job %s moved to failed queue after %d attempts", job.ID, job.Tries)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

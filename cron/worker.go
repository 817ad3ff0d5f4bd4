package cron

import (
	"context"
	"encoding/json"
	"time"

	"egarage/config"
	"egarage/services/booking"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentExpire = "appointment:expire"

// ExpirePayload identifies the appointment whose payment window has closed.
type ExpirePayload struct {
	AppointmentID string `json:"appointmentId"`
}

// AsynqExpiryScheduler enqueues delayed expiry tasks for appointments that
// are waiting on payment.
type AsynqExpiryScheduler struct {
	Client *asynq.Client
}

// NewAsynqExpiryScheduler builds a scheduler backed by the queue Redis DB.
func NewAsynqExpiryScheduler() *AsynqExpiryScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqExpiryScheduler{Client: client}
}

// ScheduleExpiry enqueues a task that fires after the payment window.
func (s *AsynqExpiryScheduler) ScheduleExpiry(appointmentID string, in time.Duration) error {
	payload, err := json.Marshal(ExpirePayload{AppointmentID: appointmentID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeAppointmentExpire, payload)
	_, err = s.Client.Enqueue(task, asynq.ProcessIn(in), asynq.MaxRetry(3))
	return err
}

// InitExpiryWorker runs the async worker in background.
func InitExpiryWorker(svc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentExpire, handleExpireTask(svc))

	go func() {
		logger := zap.L()
		logger.Info("Starting appointment expiry worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Expiry worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("Expiry worker could not start, giving up")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleExpireTask(svc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			zap.L().Error("Invalid expiry payload", zap.Error(err))
			return err
		}

		if err := svc.ExpirePendingPayment(p.AppointmentID); err != nil {
			zap.L().Error("Failed to expire appointment",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return err
		}
		zap.L().Info("Expired unpaid appointment", zap.String("appointmentId", p.AppointmentID))
		return nil
	}
}

package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"crewledger/config"
	shiftRepo "crewledger/database/repository/shift"
	"crewledger/models"
	"crewledger/services/finance"
	"crewledger/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitAuditWorker runs the status audit worker in background and schedules
// the nightly sweep. The sweep re-derives every shift's payment status from
// its own earned/paid amounts; a stored status is never trusted.
func InitAuditWorker(shifts shiftRepo.ShiftRepository, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuditQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeStatusAudit, handleStatusAudit(shifts, logger))

	go func() {
		log.Println("[AuditWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AuditWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AuditWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go scheduleNightlySweeps(asynq.NewClient(redisOpts), logger)
}

// scheduleNightlySweeps enqueues one sweep per day at the configured time.
func scheduleNightlySweeps(client *asynq.Client, logger *zap.Logger) {
	for {
		fireAt := nextSweepTime(time.Now(), config.AppConfig.AuditSweepAt)

		task, opts, err := tasks.NewStatusAuditTask(tasks.StatusAuditPayload{
			Reason:      "nightly sweep",
			RequestedAt: time.Now().UTC().Format(time.RFC3339),
		}, fireAt)
		if err != nil {
			logger.Error("failed to build status audit task", zap.Error(err))
			return
		}
		if _, err := client.Enqueue(task, opts...); err != nil {
			logger.Warn("failed to enqueue status audit task", zap.Error(err))
			time.Sleep(time.Minute)
			continue
		}

		logger.Info("status audit sweep scheduled", zap.Time("fireAt", fireAt))
		time.Sleep(time.Until(fireAt) + time.Minute)
	}
}

func nextSweepTime(now time.Time, at string) time.Time {
	parsed, err := time.Parse("15:04", at)
	if err != nil {
		parsed, _ = time.Parse("15:04", "03:30")
	}
	next := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func handleStatusAudit(shifts shiftRepo.ShiftRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload tasks.StatusAuditPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logger.Error("invalid status audit payload", zap.Error(err))
			return err
		}

		var scanned, repaired, violations int
		err := shifts.ForEach(ctx, func(shift models.Shift) error {
			scanned++

			if shift.PaidAmount < 0 || shift.PaidAmount > shift.EarnedAmount {
				// An out-of-range paid amount means a write bypassed the
				// coordinator; it needs a human, not an automated repair.
				violations++
				logger.Error("shift violates payment bounds",
					zap.String("shiftId", shift.ID),
					zap.Float64("earned", shift.EarnedAmount),
					zap.Float64("paid", shift.PaidAmount),
				)
				return nil
			}

			want := finance.Status(shift.EarnedAmount, shift.PaidAmount)
			if shift.Status == want {
				return nil
			}

			logger.Warn("repairing divergent shift status",
				zap.String("shiftId", shift.ID),
				zap.String("stored", shift.Status),
				zap.String("derived", want),
			)
			shift.Status = want
			if err := shifts.Update(ctx, &shift); err != nil {
				return err
			}
			repaired++
			return nil
		})
		if err != nil {
			logger.Error("status audit sweep failed", zap.Error(err))
			return err
		}

		logger.Info("status audit sweep finished",
			zap.String("reason", payload.Reason),
			zap.Int("scanned", scanned),
			zap.Int("repaired", repaired),
			zap.Int("violations", violations),
		)
		return nil
	}
}

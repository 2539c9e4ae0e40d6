package cron

import (
	"context"
	"log"
	"time"

	"safarihub/config"
	"safarihub/services/tour"

	"github.com/hibiken/asynq"
)

const TypeAvailabilitySweep = "availability:sweep"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepQueueDB,
	}
}

// InitSweepWorker runs the async worker in background and schedules the
// nightly staff-availability sweep.
func InitSweepWorker(coordinator tour.Coordinator) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAvailabilitySweep, handleSweepTask(coordinator))

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go runSweepScheduler()
}

// runSweepScheduler enqueues the sweep task on the configured cron schedule.
func runSweepScheduler() {
	scheduler := asynq.NewScheduler(redisOpts(), &asynq.SchedulerOpts{Location: time.UTC})

	spec := config.AppConfig.AvailabilitySweepSchedule
	if spec == "" {
		spec = "0 3 * * *"
	}
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeAvailabilitySweep, nil)); err != nil {
		log.Printf("[SweepWorker] failed to register sweep schedule: %v", err)
		return
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[SweepWorker] scheduler stopped: %v", err)
	}
}

func handleSweepTask(coordinator tour.Coordinator) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		released, err := coordinator.ResetEndedToursAvailability(ctx)
		if err != nil {
			log.Printf("[SweepWorker] availability sweep failed: %v", err)
			return err
		}
		log.Printf("[SweepWorker] availability sweep released %d staff members", released)
		return nil
	}
}

// EnqueueAvailabilitySweep queues one immediate sweep run.
func EnqueueAvailabilitySweep() error {
	client := asynq.NewClient(redisOpts())
	defer client.Close()

	_, err := client.Enqueue(asynq.NewTask(TypeAvailabilitySweep, nil))
	return err
}

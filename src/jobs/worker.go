package jobs

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"library-attendance-backend/src/database"
	"library-attendance-backend/src/jobs/tasks"
	"library-attendance-backend/src/services/attendance"
	"library-attendance-backend/src/utils"
)

// HandleForceOutAllTask is the worker side of the closing-time job. A library
// with nobody inside is a normal run, not an error.
func HandleForceOutAllTask(ctx context.Context, t *asynq.Task) error {
	updated, err := attendance.ForceOutAll()
	if err != nil {
		log.Println("❌ Force-out job failed:", err)
		return err
	}

	if len(updated) == 0 {
		log.Println("Force-out job: no active students to update")
		return nil
	}

	log.Printf("✅ Force-out job marked %d students OUT", len(updated))
	return nil
}

// StartWorker runs the asynq server and the closing-time schedule in the
// background. Without Redis this is a no-op and the HTTP API runs alone.
func StartWorker() {
	if database.RedisClient == nil || database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Closing-time force-out job disabled.")
		return
	}

	redisOpt := asynq.RedisClientOpt{Addr: database.RedisURI}

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeForceOutAll, HandleForceOutAllTask)

	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 1})
	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq server stopped:", err)
		}
	}()

	// Library closes at 20:00 IST; everyone still marked IN goes OUT then.
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: utils.ISTLocation,
	})
	if _, err := scheduler.Register("0 20 * * *", tasks.NewForceOutAllTask()); err != nil {
		log.Println("❌ Failed to register closing-time job:", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("❌ Asynq scheduler stopped:", err)
		}
	}()

	log.Println("✅ Closing-time force-out job scheduled (20:00 IST)")
}

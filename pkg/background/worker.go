package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"fastfeet/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками.
	TTL() time.Duration

	Do(context.Context) error

	// Info имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker крутит набор задач, пока не отменён контекст.
type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогревает задачи (каждая выполняется один раз синхронно) и запускает
// их периодическое выполнение. Ошибка или паника на прогреве возвращается
// сразу, воркер в этом случае не создаётся.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("task %q init panic: %v", task.Info(), r)
					log.Error("task panic during warmup",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(debug.Stack())),
					)
				}
			}()
			log.Info("task warmup", logger.NewField("task", task.Info()))
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go worker.runPeriodic(ctx, task)
	}

	return worker, nil
}

// Wait блокируется, пока все задачи не остановятся после отмены контекста.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) runPeriodic(ctx context.Context, task Task) {
	defer w.wg.Done()

	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, periodic execution skipped",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl.String()),
		)
		return
	}

	w.log.Info("periodic execution started",
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl.String()),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("periodic execution stopped", logger.NewField("task", task.Info()))
			return
		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}

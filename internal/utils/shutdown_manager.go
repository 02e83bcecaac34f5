package utils

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const shutdownTimeout = 15 * time.Second

type shutdownTask struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager останавливает фоновые задачи через отмену контекста
// и прогоняет именованные teardown-задачи в порядке регистрации.
type ShutdownManager struct {
	cancelFunc context.CancelFunc
	tasks      []shutdownTask
	mu         sync.Mutex
}

func NewShutdownManager(ctx context.Context) (context.Context, *ShutdownManager) {
	ctx, cancel := context.WithCancel(ctx)
	manager := &ShutdownManager{
		cancelFunc: cancel,
	}
	return ctx, manager
}

func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.tasks = append(sm.tasks, shutdownTask{name: name, fn: fn})
}

func (sm *ShutdownManager) StartListening() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("[SHUTDOWN] Received signal: %v", sig)
		sm.cancelFunc()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		sm.runTasks(ctx)

		log.Println("[SHUTDOWN] Graceful shutdown complete")
		os.Exit(0)
	}()
}

// Ошибка одной задачи не прерывает остальные.
func (sm *ShutdownManager) runTasks(ctx context.Context) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for _, task := range sm.tasks {
		log.Printf("[SHUTDOWN] %s...", task.name)
		if err := task.fn(ctx); err != nil {
			log.Printf("[SHUTDOWN] %s failed: %v", task.name, err)
		}
	}
}

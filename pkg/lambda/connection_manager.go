package lambda

import (
	"context"
	"sync"

	"booking-api/internal/config"
	"booking-api/pkg/server"
)

// ConnectionManager caches the dependency container across Lambda
// invocations so the DynamoDB client is built once per execution environment
// and reused, not reconstructed per request.
type ConnectionManager struct {
	mu        sync.Mutex
	container *server.Container
	config    *config.Config
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// Initialize builds the container from the given configuration. A failed
// build leaves the manager empty so a later invocation can retry instead of
// serving a dead cache.
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.initLocked(ctx, cfg)
}

func (cm *ConnectionManager) initLocked(ctx context.Context, cfg *config.Config) error {
	if cm.container != nil {
		return nil
	}

	container, err := server.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}

	cm.container = container
	cm.config = cfg
	return nil
}

// GetContainer returns the cached service container, initializing it from
// the environment configuration on first use. It never returns a nil
// container without an error.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return cm.container, nil
	}

	cfg := cm.config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cm.initLocked(ctx, cfg); err != nil {
		return nil, err
	}
	return cm.container, nil
}

// Cleanup closes the cached container
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
		cm.config = nil
	}
	return nil
}

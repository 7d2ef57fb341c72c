package serviceimpl

import (
	"context"
	"sync"
	"time"

	"github.com/samiullah014/stan-task/domain/services"
	"github.com/samiullah014/stan-task/pkg/logger"
)

const storePingTimeout = 5 * time.Second

// Pinger is anything that can report store liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type StoreMonitorServiceImpl struct {
	pinger Pinger
	driver string

	mu   sync.RWMutex
	last services.StoreHealth
}

func NewStoreMonitorService(pinger Pinger, driver string) *StoreMonitorServiceImpl {
	return &StoreMonitorServiceImpl{
		pinger: pinger,
		driver: driver,
		last:   services.StoreHealth{Driver: driver, State: services.StoreStateUnknown},
	}
}

var _ services.StoreMonitorService = (*StoreMonitorServiceImpl)(nil)

// Check pings the store and records the outcome. A state change is logged
// once rather than on every tick.
func (m *StoreMonitorServiceImpl) Check(ctx context.Context) services.StoreHealth {
	ctx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()

	started := time.Now()
	err := m.pinger.Ping(ctx)
	checkedAt := time.Now().UTC()

	health := services.StoreHealth{
		Driver:    m.driver,
		State:     services.StoreStateUp,
		CheckedAt: &checkedAt,
		Latency:   time.Since(started).Round(time.Microsecond).String(),
	}
	if err != nil {
		health.State = services.StoreStateDown
	}

	m.mu.Lock()
	previous := m.last.State
	m.last = health
	m.mu.Unlock()

	switch {
	case err != nil && previous != services.StoreStateDown:
		logger.Error("Store ping failed", "driver", m.driver, "error", err)
	case err == nil && previous == services.StoreStateDown:
		logger.Info("Store reachable again", "driver", m.driver)
	}

	return health
}

// Run is the scheduler entry point.
func (m *StoreMonitorServiceImpl) Run() {
	m.Check(context.Background())
}

func (m *StoreMonitorServiceImpl) Snapshot() services.StoreHealth {
	m.mu.RLock()
	defer m.mu.RUnlock()

	health := m.last
	if health.CheckedAt != nil {
		checkedAt := *health.CheckedAt
		health.CheckedAt = &checkedAt
	}
	return health
}

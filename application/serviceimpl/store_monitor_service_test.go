package serviceimpl

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samiullah014/stan-task/domain/services"
	"github.com/samiullah014/stan-task/infrastructure/memory"
)

type switchPinger struct {
	mu  sync.Mutex
	err error
}

func (p *switchPinger) set(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *switchPinger) Ping(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	return ctx.Err()
}

func TestStoreMonitorStartsUnknown(t *testing.T) {
	monitor := NewStoreMonitorService(&switchPinger{}, "memory")

	snap := monitor.Snapshot()
	assert.Equal(t, "memory", snap.Driver)
	assert.Equal(t, services.StoreStateUnknown, snap.State)
	assert.Nil(t, snap.CheckedAt)
}

func TestStoreMonitorTracksTransitions(t *testing.T) {
	pinger := &switchPinger{}
	monitor := NewStoreMonitorService(pinger, "postgres")

	health := monitor.Check(context.Background())
	assert.Equal(t, services.StoreStateUp, health.State)
	require.NotNil(t, health.CheckedAt)
	assert.NotEmpty(t, health.Latency)

	pinger.set(errors.New("dial tcp: connection refused"))
	monitor.Run()
	assert.Equal(t, services.StoreStateDown, monitor.Snapshot().State)

	pinger.set(nil)
	monitor.Run()
	assert.Equal(t, services.StoreStateUp, monitor.Snapshot().State)
}

func TestStoreMonitorWithMemoryStore(t *testing.T) {
	monitor := NewStoreMonitorService(memory.NewTaskRepository(nil), "memory")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, services.StoreStateDown, monitor.Check(ctx).State)
	assert.Equal(t, services.StoreStateUp, monitor.Check(context.Background()).State)
}

func TestStoreMonitorSnapshotIsCopy(t *testing.T) {
	monitor := NewStoreMonitorService(&switchPinger{}, "memory")
	monitor.Run()

	snap := monitor.Snapshot()
	require.NotNil(t, snap.CheckedAt)
	*snap.CheckedAt = snap.CheckedAt.AddDate(-1, 0, 0)

	assert.NotEqual(t, *snap.CheckedAt, *monitor.Snapshot().CheckedAt)
}

package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samiullah014/stan-task/domain/dto"
	"github.com/samiullah014/stan-task/domain/services"
	"github.com/samiullah014/stan-task/pkg/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Name: "Task API", Port: "0", Env: "test", CORSOrigins: "*"},
		Store: config.StoreConfig{Driver: config.StoreDriverMemory, CheckInterval: time.Hour},
		Tasks: config.TaskConfig{RejectEmptyUpdate: true},
		Feed:  config.FeedConfig{Enabled: true},
	}
}

func TestContainerWithMemoryStore(t *testing.T) {
	c := NewContainerWithConfig(memoryConfig())
	require.NoError(t, c.InitializeComponents())
	defer func() { assert.NoError(t, c.Cleanup()) }()

	assert.Nil(t, c.DB)
	assert.Nil(t, c.NATSClient)
	assert.Nil(t, c.RedisClient)
	require.NotNil(t, c.TaskFeed)
	assert.True(t, c.JobScheduler.IsRunning())

	task, err := c.TaskService.CreateTask(context.Background(), &dto.CreateTaskRequest{Title: "wired"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)

	assert.Eventually(t, func() bool {
		return c.StoreMonitorService.Snapshot().State == services.StoreStateUp
	}, 2*time.Second, 10*time.Millisecond)

	hs := c.GetHandlerServices()
	assert.Equal(t, "Task API", hs.AppName)
	assert.False(t, hs.EventsEnabled)
	assert.NotNil(t, hs.TaskFeed)

	opts := c.GetRouteOptions()
	assert.True(t, opts.RejectEmptyUpdate)
	assert.Equal(t, "*", opts.CORSOrigins)
}

func TestContainerWithoutFeed(t *testing.T) {
	cfg := memoryConfig()
	cfg.Feed.Enabled = false

	c := NewContainerWithConfig(cfg)
	require.NoError(t, c.InitializeComponents())
	defer c.Cleanup()

	assert.Nil(t, c.TaskFeed)
	assert.Nil(t, c.GetHandlerServices().TaskFeed)
}

func TestInitializeComponentsNeedsConfig(t *testing.T) {
	assert.Error(t, NewContainer().InitializeComponents())
}

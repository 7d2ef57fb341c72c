package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/samiullah014/stan-task/pkg/logger"
)

type JobScheduler interface {
	Start()
	Stop()
	AddIntervalJob(id string, every time.Duration, task func()) error
	RemoveJob(id string) error
	GetJob(id string) (*JobInfo, bool)
	IsRunning() bool
}

type JobInfo struct {
	ID      string
	Every   time.Duration
	Job     *gocron.Job
	LastRun *time.Time
	NextRun *time.Time
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*JobInfo
	mu        sync.RWMutex
	running   bool
}

// NewJobScheduler runs jobs in UTC. A job never overlaps with its own
// previous run.
func NewJobScheduler() JobScheduler {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	return &GocronScheduler{
		scheduler: scheduler,
		jobs:      make(map[string]*JobInfo),
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		logger.Debug("Scheduler is already running")
		return
	}

	s.scheduler.StartAsync()
	s.running = true
	logger.Info("Job scheduler started", "jobs", len(s.jobs))
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.scheduler.Stop()
	s.running = false
	logger.Info("Job scheduler stopped")
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// AddIntervalJob registers task to run every interval. Jobs added before
// Start run once immediately when the scheduler starts.
func (s *GocronScheduler) AddIntervalJob(id string, every time.Duration, task func()) error {
	if every <= 0 {
		return fmt.Errorf("job %s: interval must be positive, got %s", id, every)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job with ID %s already exists", id)
	}

	job, err := s.scheduler.Every(every).Do(func() {
		now := time.Now().UTC()

		s.mu.Lock()
		if info, exists := s.jobs[id]; exists {
			info.LastRun = &now
		}
		s.mu.Unlock()

		task()
	})
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", id, err)
	}

	s.jobs[id] = &JobInfo{ID: id, Every: every, Job: job}
	logger.Debug("Job added", "job_id", id, "every", every.String())
	return nil
}

func (s *GocronScheduler) RemoveJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job with ID %s not found", id)
	}

	if info.Job != nil {
		s.scheduler.RemoveByReference(info.Job)
	}

	delete(s.jobs, id)
	logger.Debug("Job removed", "job_id", id)
	return nil
}

// GetJob returns a copy of the job's bookkeeping.
func (s *GocronScheduler) GetJob(id string) (*JobInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, exists := s.jobs[id]
	if !exists {
		return nil, false
	}

	out := &JobInfo{ID: info.ID, Every: info.Every, Job: info.Job}
	if info.LastRun != nil {
		lastRun := *info.LastRun
		out.LastRun = &lastRun
	}
	if info.Job != nil && s.running {
		nextRun := info.Job.NextRun()
		out.NextRun = &nextRun
	}
	return out, true
}

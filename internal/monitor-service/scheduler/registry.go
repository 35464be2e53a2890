package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
)

// TimerRegistry owns at most one recurring timer per monitor id.
type TimerRegistry interface {
	// Reinstall replaces any timer registered for monitorID with a new one firing every intervalMinutes.
	Reinstall(monitorID string, intervalMinutes int, job func()) error
	Cancel(monitorID string)
	CancelAll()
	Has(monitorID string) bool
	Len() int
	Start()
	// Stop halts future fires. The returned context is done once running jobs have returned.
	Stop() context.Context
}

type cronRegistry struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]cron.EntryID
	logger  cron.Logger
}

func (r *cronRegistry) Reinstall(monitorID string, intervalMinutes int, job func()) error {
	spec, err := intervalSpec(intervalMinutes)
	if err != nil {
		return fmt.Errorf("TimerRegistry.Reinstall: %w", err)
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return fmt.Errorf("TimerRegistry.Reinstall: %w", err)
	}
	// a fresh chain per job keeps skipping scoped to this monitor
	wrapped := cron.NewChain(cron.Recover(r.logger), cron.SkipIfStillRunning(r.logger)).Then(cron.FuncJob(job))

	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.entries[monitorID]; ok {
		r.cron.Remove(id)
		delete(r.entries, monitorID)
	}
	r.entries[monitorID] = r.cron.Schedule(schedule, wrapped)
	return nil
}

func (r *cronRegistry) Cancel(monitorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.entries[monitorID]; ok {
		r.cron.Remove(id)
		delete(r.entries, monitorID)
	}
}

func (r *cronRegistry) CancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for monitorID, id := range r.entries {
		r.cron.Remove(id)
		delete(r.entries, monitorID)
	}
}

func (r *cronRegistry) Has(monitorID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[monitorID]
	return ok
}

func (r *cronRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *cronRegistry) Start() {
	r.cron.Start()
}

func (r *cronRegistry) Stop() context.Context {
	r.CancelAll()
	return r.cron.Stop()
}

// intervalSpec aligns intervals that divide an hour or a day to wall-clock boundaries.
func intervalSpec(intervalMinutes int) (string, error) {
	switch {
	case intervalMinutes < 1:
		return "", fmt.Errorf("interval must be at least 1 minute, got %d", intervalMinutes)
	case intervalMinutes < 60 && 60%intervalMinutes == 0:
		return fmt.Sprintf("*/%d * * * *", intervalMinutes), nil
	case intervalMinutes%60 == 0 && 24%(intervalMinutes/60) == 0:
		return fmt.Sprintf("0 */%d * * *", intervalMinutes/60), nil
	default:
		return fmt.Sprintf("@every %dm", intervalMinutes), nil
	}
}

func NewTimerRegistry(logger cron.Logger) TimerRegistry {
	return &cronRegistry{
		cron:    cron.New(cron.WithLogger(logger)),
		entries: make(map[string]cron.EntryID),
		logger:  logger,
	}
}

package scheduler

import (
	"VCS_API_Monitor/internal/monitor-service/model"
	"VCS_API_Monitor/internal/monitor-service/probe"
	"VCS_API_Monitor/pkg/logger"
	"testing"
	"time"

	"go.uber.org/zap"
)

type harness struct {
	scheduler *monitorScheduler
	store     *fakeStore
	requests  *fakeRequests
	executor  *scriptedExecutor
	metrics   *fakeMetrics
	alerts    *fakeAlerts
	notifier  *fakeNotifier
	clock     *fakeClock
	state     timerState
}

func testMonitor() model.Monitor {
	return model.Monitor{
		ID:                        "monitor-1",
		Name:                      "checkout api",
		RequestID:                 "request-1",
		UserID:                    "user-1",
		IntervalMinutes:           5,
		ThresholdMs:               500,
		IsActive:                  true,
		EmailNotificationsEnabled: true,
	}
}

func newHarness(t *testing.T, monitor model.Monitor) *harness {
	t.Helper()
	h := &harness{
		store:    newFakeStore(monitor),
		requests: &fakeRequests{},
		executor: &scriptedExecutor{results: []probe.Result{healthyResult()}},
		metrics:  &fakeMetrics{},
		alerts:   &fakeAlerts{},
		notifier: &fakeNotifier{},
		clock:    &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		state: timerState{
			monitorID:       monitor.ID,
			requestID:       monitor.RequestID,
			intervalMinutes: monitor.IntervalMinutes,
			thresholdMs:     monitor.ThresholdMs,
		},
	}
	registry := NewTimerRegistry(logger.NewCronLogger(zap.NewNop()))
	t.Cleanup(func() { <-registry.Stop().Done() })
	h.scheduler = &monitorScheduler{
		registry:    registry,
		monitorRepo: h.store,
		requestRepo: h.requests,
		executor:    h.executor,
		metrics:     h.metrics,
		alerts:      h.alerts,
		notifier:    h.notifier,
		cfg: Config{
			FailureThreshold: 5,
			EmailCooldown:    24 * time.Hour,
			TickTimeout:      time.Minute,
		},
		logger: zap.NewNop(),
		now:    h.clock.Now,
	}
	return h
}

// tickEvery fires n ticks, advancing the clock by the monitor interval before each one.
func (h *harness) tickEvery(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(time.Duration(h.state.intervalMinutes) * time.Minute)
		h.scheduler.tick(h.state)
	}
}

func healthyResult() probe.Result {
	return probe.Result{Success: true, StatusCode: 200, StatusText: "OK", ResponseTime: 40}
}

func statusResult(code int, text string, responseTime int64) probe.Result {
	return probe.Result{Success: true, StatusCode: code, StatusText: text, ResponseTime: responseTime}
}

func transportFailure(msg string) probe.Result {
	return probe.Result{Error: msg, ResponseTime: 3}
}

package scheduler

import (
	apperrors "VCS_API_Monitor/internal/monitor-service/errors"
	"VCS_API_Monitor/internal/monitor-service/model"
	"VCS_API_Monitor/internal/monitor-service/notifier"
	"VCS_API_Monitor/internal/monitor-service/probe"
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// fakeStore is an in-memory MonitorRepository that keeps state across ticks.
type fakeStore struct {
	mu           sync.Mutex
	monitors     map[string]*model.Monitor
	ownerEmails  map[string]string
	incrementErr error
}

func newFakeStore(monitors ...model.Monitor) *fakeStore {
	s := &fakeStore{monitors: map[string]*model.Monitor{}, ownerEmails: map[string]string{}}
	for i := range monitors {
		m := monitors[i]
		s.monitors[m.ID] = &m
		s.ownerEmails[m.ID] = "owner@example.com"
	}
	return s
}

func (f *fakeStore) get(id string) model.Monitor {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.monitors[id]
}

func (f *fakeStore) set(id string, update func(m *model.Monitor)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	update(f.monitors[id])
}

func (f *fakeStore) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.monitors, id)
}

func (f *fakeStore) find(id string) (*model.Monitor, error) {
	m, ok := f.monitors[id]
	if !ok {
		return nil, apperrors.ErrMonitorNotFound
	}
	return m, nil
}

func (f *fakeStore) CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.monitors[monitor.ID] = &monitor
	return monitor, nil
}

func (f *fakeStore) GetMonitorById(ctx context.Context, monitorId string) (model.Monitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.find(monitorId)
	if err != nil {
		return model.Monitor{}, err
	}
	return *m, nil
}

func (f *fakeStore) GetMonitorWithOwnerById(ctx context.Context, monitorId string) (model.MonitorWithOwner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.find(monitorId)
	if err != nil {
		return model.MonitorWithOwner{}, err
	}
	return model.MonitorWithOwner{
		Monitor:    *m,
		OwnerEmail: f.ownerEmails[monitorId],
		OwnerName:  "Owner",
		RequestURL: "https://api.example.com/health",
	}, nil
}

func (f *fakeStore) GetMonitorsByUserId(ctx context.Context, userId string) ([]model.Monitor, error) {
	return nil, errors.New("not used")
}

func (f *fakeStore) GetActiveMonitors(ctx context.Context) ([]model.Monitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var res []model.Monitor
	for _, m := range f.monitors {
		if m.IsActive {
			res = append(res, *m)
		}
	}
	return res, nil
}

func (f *fakeStore) GetMonitorsPendingNotification(ctx context.Context, failureThreshold int) ([]model.Monitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var res []model.Monitor
	for _, m := range f.monitors {
		if m.IsActive && m.EmailNotificationsEnabled && m.ConsecutiveFailures >= failureThreshold {
			res = append(res, *m)
		}
	}
	return res, nil
}

func (f *fakeStore) IncrementConsecutiveFailures(ctx context.Context, monitorId string) (model.Monitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incrementErr != nil {
		return model.Monitor{}, f.incrementErr
	}
	m, err := f.find(monitorId)
	if err != nil {
		return model.Monitor{}, err
	}
	m.ConsecutiveFailures++
	return *m, nil
}

func (f *fakeStore) ResetConsecutiveFailures(ctx context.Context, monitorId string) (model.Monitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.find(monitorId)
	if err != nil {
		return model.Monitor{}, err
	}
	m.ConsecutiveFailures = 0
	return *m, nil
}

func (f *fakeStore) UpdateLastEmailSent(ctx context.Context, monitorId string, sentAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.find(monitorId)
	if err != nil {
		return err
	}
	m.LastEmailSent = &sentAt
	return nil
}

func (f *fakeStore) UpdateLastRun(ctx context.Context, monitorId string, lastRun time.Time, nextRun time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.find(monitorId)
	if err != nil {
		return err
	}
	m.LastRun = &lastRun
	m.NextRun = &nextRun
	return nil
}

func (f *fakeStore) UpdateMonitorActive(ctx context.Context, monitorId string, active bool) (model.Monitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.find(monitorId)
	if err != nil {
		return model.Monitor{}, err
	}
	m.IsActive = active
	return *m, nil
}

func (f *fakeStore) UpdateMonitor(ctx context.Context, updatedData model.Monitor) (model.Monitor, error) {
	return model.Monitor{}, errors.New("not used")
}

func (f *fakeStore) DeleteMonitorById(ctx context.Context, monitorId string) error {
	f.remove(monitorId)
	return nil
}

type fakeRequests struct {
	err error
}

func (f *fakeRequests) GetRequestDetails(ctx context.Context, requestId string) (model.Request, error) {
	if f.err != nil {
		return model.Request{}, f.err
	}
	return model.Request{ID: requestId, Method: "GET", URL: "https://api.example.com/health"}, nil
}

// scriptedExecutor returns its results in order and then repeats the last one.
type scriptedExecutor struct {
	mu      sync.Mutex
	results []probe.Result
	calls   int
	panics  bool
}

func (e *scriptedExecutor) Execute(ctx context.Context, request model.Request) probe.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.panics {
		panic("executor exploded")
	}
	i := e.calls
	if i >= len(e.results) {
		i = len(e.results) - 1
	}
	e.calls++
	return e.results[i]
}

func (e *scriptedExecutor) setResults(results ...probe.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.results = results
	e.calls = 0
}

type fakeMetrics struct {
	mu      sync.Mutex
	metrics []model.Metric
	err     error
}

func (f *fakeMetrics) Record(ctx context.Context, metric model.Metric) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.metrics = append(f.metrics, metric)
	return nil
}

type fakeAlerts struct {
	mu          sync.Mutex
	alerts      []model.Alert
	panicPrefix string
}

func (f *fakeAlerts) CreateAlert(ctx context.Context, monitorID string, message string, severity string) *model.Alert {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panicPrefix != "" && strings.HasPrefix(message, f.panicPrefix) {
		panic("alert store exploded")
	}
	alert := model.Alert{ID: int64(len(f.alerts) + 1), MonitorID: monitorID, Message: message, Severity: severity}
	f.alerts = append(f.alerts, alert)
	return &alert
}

func (f *fakeAlerts) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]string, 0, len(f.alerts))
	for _, a := range f.alerts {
		res = append(res, a.Message)
	}
	return res
}

type sentEmail struct {
	to           string
	failureCount int
	lastError    string
}

type fakeNotifier struct {
	mu         sync.Mutex
	failures   []sentEmail
	recoveries []sentEmail
	fail       bool
}

func (f *fakeNotifier) SendFailureEmail(to string, monitorName string, url string, failureCount int, lastError string) notifier.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, sentEmail{to: to, failureCount: failureCount, lastError: lastError})
	if f.fail {
		return notifier.Result{Error: "smtp: 421 service not available"}
	}
	return notifier.Result{Success: true, MessageID: "<id@example.com>"}
}

func (f *fakeNotifier) SendRecoveryEmail(to string, monitorName string, url string) notifier.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recoveries = append(f.recoveries, sentEmail{to: to})
	if f.fail {
		return notifier.Result{Error: "smtp: 421 service not available"}
	}
	return notifier.Result{Success: true, MessageID: "<id@example.com>"}
}

func (f *fakeNotifier) failureCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.failures)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

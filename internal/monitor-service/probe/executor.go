package probe

import (
	"VCS_API_Monitor/internal/monitor-service/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
)

// Result is the outcome of one probe. Success means an HTTP response was received, whatever its status.
type Result struct {
	Success      bool
	StatusCode   int // 0 when no response was received
	StatusText   string
	Data         string
	Headers      map[string]string
	ResponseTime int64 // milliseconds
	Size         string
	Error        string
}

type Executor interface {
	Execute(ctx context.Context, request model.Request) Result
}

type httpExecutor struct {
	client  *http.Client
	timeout time.Duration
}

// Execute never returns an error. Validation and transport failures are reported in Result.Error.
func (h *httpExecutor) Execute(ctx context.Context, request model.Request) Result {
	start := time.Now()
	method := strings.ToUpper(strings.TrimSpace(request.Method))
	if method == "" {
		method = http.MethodGet
	}

	if requiresBody(method) {
		if msg := validateJSONBody(method, request.Body); msg != "" {
			return Result{Error: msg, ResponseTime: elapsedMs(start)}
		}
	}

	headers, err := request.HeaderMap()
	if err != nil {
		return Result{Error: fmt.Sprintf("Invalid request headers: %v", err), ResponseTime: elapsedMs(start)}
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	var body io.Reader
	if request.Body != "" && method != http.MethodGet && method != http.MethodHead {
		body = strings.NewReader(request.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, request.URL, body)
	if err != nil {
		return Result{Error: fmt.Sprintf("Invalid request: %v", err), ResponseTime: elapsedMs(start)}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return Result{Error: h.classifyTransportError(req.URL, err), ResponseTime: elapsedMs(start)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	responseTime := elapsedMs(start)
	if err != nil {
		// the exchange completed, only the body was cut short
		data = nil
	}

	return Result{
		Success:      true,
		StatusCode:   resp.StatusCode,
		StatusText:   http.StatusText(resp.StatusCode),
		Data:         string(data),
		Headers:      flattenHeaders(resp.Header),
		ResponseTime: responseTime,
		Size:         responseSize(resp.Header, data),
	}
}

func (h *httpExecutor) classifyTransportError(target *url.URL, err error) string {
	host := target.Host
	var dnsErr *net.DNSError
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Sprintf("Request timeout: no response from %s within %s", host, h.timeout)
	case errors.As(err, &dnsErr):
		return fmt.Sprintf("Host not found: %s", dnsErr.Name)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Sprintf("Connection refused: %s", host)
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	default:
		return fmt.Sprintf("Network error: %v", err)
	}
}

func requiresBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

// validateJSONBody returns a description of what is wrong with body, or "" if it is usable.
func validateJSONBody(method string, body string) string {
	if strings.TrimSpace(body) == "" {
		return fmt.Sprintf("Request body is required for %s requests", method)
	}
	if !json.Valid([]byte(body)) {
		return fmt.Sprintf("Request body for %s requests must be valid JSON", method)
	}
	return ""
}

func flattenHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for k, v := range h {
		headers[k] = strings.Join(v, ", ")
	}
	return headers
}

func responseSize(h http.Header, data []byte) string {
	if cl := h.Get("Content-Length"); cl != "" {
		if n, err := strconv.ParseUint(cl, 10, 64); err == nil {
			return humanize.IBytes(n)
		}
	}
	return humanize.IBytes(uint64(len(data)))
}

func elapsedMs(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}

func NewExecutor(timeout time.Duration) Executor {
	return &httpExecutor{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		timeout: timeout,
	}
}

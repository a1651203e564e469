package odoo

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Request describes an operation about to be sent.
type Request struct {
	Operation Operation
	Model     string
	Args      []interface{}
	Kwargs    map[string]interface{}
	Metadata  map[string]interface{}
}

// Response describes the outcome of an operation. Error is the error returned
// to the caller.
type Response struct {
	Result   interface{}
	Error    error
	Duration time.Duration
}

// RequestInterceptor is called before an operation is sent. Returning an error
// aborts the call.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after an operation completes.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

func (c *InterceptorChain) empty() bool {
	return c == nil || (len(c.requestInterceptors) == 0 && len(c.responseInterceptors) == 0)
}

// LoggingResponseInterceptor logs every completed operation with its duration.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"operation": req.Operation.String(),
			"model":     req.Model,
			"duration":  resp.Duration.String(),
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
			logger.Error("Operation failed", fields)
		} else {
			logger.Debug("Operation completed", fields)
		}

		return nil
	}
}

// Metrics holds counters for one operation on one model.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector collects per-operation metrics. It is safe for concurrent use.
type MetricsCollector struct {
	mu      sync.Mutex
	metrics map[string]*Metrics
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metrics),
	}
}

// GetMetrics returns a snapshot of the metrics for operation on model, or nil.
func (m *MetricsCollector) GetMetrics(operation Operation, model string) *Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.metrics[metricsKey(operation, model)]
	if !ok {
		return nil
	}

	snapshot := *metrics

	return &snapshot
}

// MetricsResponseInterceptor records the outcome of every operation in collector.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		collector.mu.Lock()
		defer collector.mu.Unlock()

		key := metricsKey(req.Operation, req.Model)

		metrics, ok := collector.metrics[key]
		if !ok {
			metrics = &Metrics{}
			collector.metrics[key] = metrics
		}

		metrics.TotalRequests++
		metrics.LastRequestTime = time.Now()
		metrics.TotalLatency += resp.Duration
		metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)

		if resp.Error != nil {
			metrics.TotalErrors++
		}

		return nil
	}
}

func metricsKey(operation Operation, model string) string {
	return operation.String() + " " + model
}

package prometheus

import (
	"context"
	"strings"
	"time"

	"github.com/DIN-center/din-ccip-tasks/lib/taskerrors"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	PushGatewayURLEnv = "PROMETHEUS_PUSHGATEWAY_URL"
	pushJobName       = "ccip_tasks"

	StatusSuccess = "success"
	StatusUnknown = "unknown_error"
)

var _ IPrometheusClient = &PrometheusClient{}

// PrometheusClient records task outcomes into its own registry so a one-shot
// process can push them before it exits.
type PrometheusClient struct {
	registry       *prometheus.Registry
	pushGatewayURL string

	TaskCount    *prometheus.CounterVec
	TaskDuration *prometheus.HistogramVec
}

// NewPrometheusClient returns a new prometheus client. An empty pushGatewayURL disables Push.
func NewPrometheusClient(pushGatewayURL string) *PrometheusClient {
	p := &PrometheusClient{
		registry:       prometheus.NewRegistry(),
		pushGatewayURL: pushGatewayURL,
	}
	p.RegisterMetrics()
	return p
}

// RegisterMetrics registers the prometheus metrics
func (p *PrometheusClient) RegisterMetrics() {
	// Register task count metric for every task invocation
	p.TaskCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ccip_task_count",
			Help: "Metric for counting ccip task invocations with task, network, strategy, and status labels",
		},
		[]string{"task", "network", "strategy", "status"},
	)

	p.TaskDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ccip_task_duration_seconds",
			Help:    "Wall time of a ccip task including confirmation waits",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"task", "network"},
	)

	p.registry.MustRegister(p.TaskCount, p.TaskDuration)
}

type PromTaskMetricData struct {
	Task     string
	Network  string
	Strategy string
	Err      error
	Duration time.Duration
}

// HandleTaskMetric increments the task counter and observes the task duration
func (p *PrometheusClient) HandleTaskMetric(data *PromTaskMetricData) {
	p.TaskCount.WithLabelValues(data.Task, data.Network, data.Strategy, StatusLabel(data.Err)).Inc()
	p.TaskDuration.WithLabelValues(data.Task, data.Network).Observe(data.Duration.Seconds())
}

// Push sends the registry to the configured pushgateway, if any.
func (p *PrometheusClient) Push(ctx context.Context) error {
	if p.pushGatewayURL == "" {
		return nil
	}
	err := push.New(p.pushGatewayURL, pushJobName).Gatherer(p.registry).PushContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to push metrics")
	}
	return nil
}

// StatusLabel maps an error to its kind, e.g. "authorization_mismatch".
func StatusLabel(err error) string {
	if err == nil {
		return StatusSuccess
	}
	kind := taskerrors.Kind(err)
	if kind == nil {
		return StatusUnknown
	}
	return strings.ReplaceAll(kind.Error(), " ", "_")
}

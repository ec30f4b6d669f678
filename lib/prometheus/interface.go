package prometheus

import "context"

type IPrometheusClient interface {
	HandleTaskMetric(data *PromTaskMetricData)
	Push(ctx context.Context) error
}

package telemetry

import (
	"context"
	"fmt"
	"time"

	monitoring "cloud.google.com/go/monitoring/apiv3"
	"google.golang.org/genproto/googleapis/api/metric"
	"google.golang.org/genproto/googleapis/api/monitoredres"
	monitoringpb "google.golang.org/genproto/googleapis/monitoring/v3"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/codearena/arenabot/utils"
)

// MetricsClient Google Cloud Monitoring 클라이언트를 래핑합니다
type MetricsClient struct {
	client    *monitoring.MetricClient
	projectID string
	enabled   bool
}

// NewMetricsClient 새로운 MetricsClient 인스턴스를 생성합니다
func NewMetricsClient(projectID string) *MetricsClient {
	if projectID == "" {
		utils.Warn("Project ID not provided, telemetry disabled")
		return &MetricsClient{enabled: false}
	}

	client, err := monitoring.NewMetricClient(context.Background())
	if err != nil {
		utils.Warn("Failed to create monitoring client: %v", err)
		utils.Warn("Telemetry disabled")
		return &MetricsClient{enabled: false}
	}

	utils.Info("Google Cloud Monitoring telemetry enabled for project: %s", projectID)
	return &MetricsClient{
		client:    client,
		projectID: projectID,
		enabled:   true,
	}
}

// SendCommandMetric 명령어 사용 메트릭을 전송합니다
func (m *MetricsClient) SendCommandMetric(command string) {
	if !m.enabled {
		return
	}

	ctx := context.Background()
	now := &timestamppb.Timestamp{
		Seconds: time.Now().Unix(),
	}

	if err := m.sendLabeledMetric(ctx, "arena_bot/commands/usage", 1.0, now, map[string]string{
		"command": command,
	}); err != nil {
		utils.Warn("Failed to send command metric: %v", err)
		return
	}

	utils.Debug("Command metric sent: %s", command)
}

// SendSubmissionMetric 제출 결과 메트릭을 전송합니다
func (m *MetricsClient) SendSubmissionMetric(status string, points int) {
	if !m.enabled {
		return
	}

	ctx := context.Background()
	now := &timestamppb.Timestamp{
		Seconds: time.Now().Unix(),
	}

	if err := m.sendLabeledMetric(ctx, "arena_bot/submissions/results", 1.0, now, map[string]string{
		"status": status,
	}); err != nil {
		utils.Warn("Failed to send submission result metric: %v", err)
	}

	if err := m.sendCustomMetric(ctx, "arena_bot/submissions/points", float64(points), now); err != nil {
		utils.Warn("Failed to send submission points metric: %v", err)
	}

	utils.Debug("Submission metric sent: %s (+%d)", status, points)
}

// SendAPIMetric 백엔드 호출 메트릭을 전송합니다
func (m *MetricsClient) SendAPIMetric(endpoint string, duration time.Duration, success bool) {
	if !m.enabled {
		return
	}

	ctx := context.Background()
	now := &timestamppb.Timestamp{
		Seconds: time.Now().Unix(),
	}

	if err := m.sendLabeledMetric(ctx, "arena_bot/api/duration", duration.Seconds(), now, map[string]string{
		"endpoint": endpoint,
		"success":  fmt.Sprintf("%t", success),
	}); err != nil {
		utils.Warn("Failed to send API duration metric: %v", err)
	}

	utils.Debug("API metric sent: %s (duration: %v, success: %t)", endpoint, duration, success)
}

// SendCacheMetrics 캐시 메트릭을 Google Cloud Monitoring으로 전송합니다
func (m *MetricsClient) SendCacheMetrics(totalCalls, cacheHits, cacheMisses int64, hitRate float64) {
	if !m.enabled {
		return
	}

	ctx := context.Background()
	now := &timestamppb.Timestamp{
		Seconds: time.Now().Unix(),
	}

	if err := m.sendCustomMetric(ctx, "arena_bot/cache/hit_rate", hitRate, now); err != nil {
		utils.Warn("Failed to send cache hit rate metric: %v", err)
	}

	if err := m.sendCustomMetric(ctx, "arena_bot/cache/total_calls", float64(totalCalls), now); err != nil {
		utils.Warn("Failed to send total calls metric: %v", err)
	}

	if err := m.sendCustomMetric(ctx, "arena_bot/cache/hits", float64(cacheHits), now); err != nil {
		utils.Warn("Failed to send cache hits metric: %v", err)
	}

	if err := m.sendCustomMetric(ctx, "arena_bot/cache/misses", float64(cacheMisses), now); err != nil {
		utils.Warn("Failed to send cache misses metric: %v", err)
	}

	utils.Debug("Cache metrics sent to Google Cloud Monitoring")
}

// sendCustomMetric 단순한 커스텀 메트릭을 전송합니다
func (m *MetricsClient) sendCustomMetric(ctx context.Context, metricType string, value float64, timestamp *timestamppb.Timestamp) error {
	return m.sendLabeledMetric(ctx, metricType, value, timestamp, nil)
}

// sendLabeledMetric 라벨이 포함된 커스텀 메트릭을 전송합니다
func (m *MetricsClient) sendLabeledMetric(ctx context.Context, metricType string, value float64, timestamp *timestamppb.Timestamp, labels map[string]string) error {
	if labels == nil {
		labels = make(map[string]string)
	}

	req := &monitoringpb.CreateTimeSeriesRequest{
		Name: fmt.Sprintf("projects/%s", m.projectID),
		TimeSeries: []*monitoringpb.TimeSeries{
			{
				Metric: &metric.Metric{
					Type:   fmt.Sprintf("custom.googleapis.com/%s", metricType),
					Labels: labels,
				},
				Resource: &monitoredres.MonitoredResource{
					Type: "generic_task",
					Labels: map[string]string{
						"project_id": m.projectID,
						"location":   "global",
						"namespace":  "arena-bot",
						"job":        "competition-bot",
						"task_id":    "main",
					},
				},
				Points: []*monitoringpb.Point{
					{
						Interval: &monitoringpb.TimeInterval{
							EndTime: timestamp,
						},
						Value: &monitoringpb.TypedValue{
							Value: &monitoringpb.TypedValue_DoubleValue{
								DoubleValue: value,
							},
						},
					},
				},
			},
		},
	}

	return m.client.CreateTimeSeries(ctx, req)
}

// Close 클라이언트를 정리합니다
func (m *MetricsClient) Close() error {
	if !m.enabled || m.client == nil {
		return nil
	}
	return m.client.Close()
}

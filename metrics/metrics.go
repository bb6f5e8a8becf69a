// Package metrics 注册 Prometheus 指标。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TranslationsTotal 按模型和结果统计翻译次数
	TranslationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smarttranslate_translations_total",
		Help: "Total translate actions by model and outcome.",
	}, []string{"model", "outcome"})

	// ProviderDuration 上游chat补全耗时
	ProviderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "smarttranslate_provider_duration_seconds",
		Help:    "Time spent waiting for the chat completion endpoint.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"model"})

	// RequestsTotal HTTP请求计数
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smarttranslate_http_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})
)

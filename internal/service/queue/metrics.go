package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TasksEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_tasks_enqueued_total",
			Help: "Total number of tasks written to the outbox",
		},
		[]string{"task"},
	)

	TasksPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_tasks_published_total",
			Help: "Total number of outbox tasks published to the broker",
		},
		[]string{"task"},
	)

	RelayPublishErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_relay_publish_errors_total",
			Help: "Total number of relay runs stopped by a publish error",
		},
	)
)

package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// resultSkipped повторно доставленная, уже обработанная задача.
const resultSkipped = "skipped"

var TasksProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "queue_tasks_processed_total",
		Help: "Total number of consumed tasks by result",
	},
	[]string{"task", "result"},
)

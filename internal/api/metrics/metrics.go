// Package metrics defines the custom Prometheus metrics for the commerce API.
// It is the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// OrdersCreatedTotal counts successfully placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders successfully created.",
	},
)

// ProductWritesTotal counts catalog mutations by operation.
// Labels:
//   - op: "create", "update" or "delete"
var ProductWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_writes_total",
		Help:      "Total number of successful catalog mutations.",
	},
	[]string{"op"},
)

// ValidationFailuresTotal counts requests rejected with a field violation
// report, labelled by the payload kind.
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by field validation.",
	},
	[]string{"entity"},
)

// AuthDenialsTotal counts denied requests by reason.
// Labels:
//   - reason: "unauthorized" (no identity) or "forbidden" (role/ownership)
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests denied by authorization.",
	},
	[]string{"reason"},
)

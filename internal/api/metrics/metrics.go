// Package metrics defines all custom Prometheus metrics for the clinic API.
// It is the single source of truth for metric names, labels, and help
// strings; registration happens via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EntitiesCreatedTotal counts records created through the API.
// Label:
//   - kind: the entity kind (e.g. "patient", "invoice")
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entity records created, by kind.",
	},
	[]string{"kind"},
)

// EntitiesDeletedTotal counts records deleted through the API.
// Label:
//   - kind: the entity kind
var EntitiesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_deleted_total",
		Help:      "Total number of entity records deleted, by kind.",
	},
	[]string{"kind"},
)

// ChatMessagesTotal counts messages appended to the staff chat.
var ChatMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_messages_total",
		Help:      "Total number of chat messages posted.",
	},
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Appraisal Metrics
var (
	ItemsAppraised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAppraised,
			Help: HelpTextItemsAppraised,
		},
		[]string{LabelCategory},
	)

	ItemsExpired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsExpired,
			Help: HelpTextItemsExpired,
		},
		[]string{LabelCategory},
	)

	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvanced,
			Help: HelpTextDaysAdvanced,
		},
	)

	UnknownCategoryErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnknownCategoryErrors,
			Help: HelpTextUnknownCategoryErrors,
		},
	)
)

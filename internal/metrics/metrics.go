package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimited,
			Help: HelpTextRateLimited,
		},
	)
)

// Business Metrics
var (
	OAuthExchanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOAuthExchanges,
			Help: HelpTextOAuthExchanges,
		},
		[]string{LabelGrant, LabelOutcome},
	)

	LinkUpserts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLinkUpserts,
			Help: HelpTextLinkUpserts,
		},
	)

	Unlinks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnlinks,
			Help: HelpTextUnlinks,
		},
	)

	RoleGrants = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoleGrants,
			Help: HelpTextRoleGrants,
		},
		[]string{LabelOutcome},
	)

	MemberSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMemberSearches,
			Help: HelpTextMemberSearches,
		},
		[]string{LabelOutcome},
	)

	BotCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBotCommands,
			Help: HelpTextBotCommands,
		},
		[]string{LabelCommand},
	)
)

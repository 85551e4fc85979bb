package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	HandsPlayed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "baccarat_hands_played_total",
			Help: "Hands settled across all sessions",
		},
		[]string{"bet_type", "result"},
	)

	StepBacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "baccarat_step_backs_total",
			Help: "Hands undone by step back",
		},
	)

	SessionsFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "baccarat_sessions_finished_total",
			Help: "Sessions that stopped dealing, by reason",
		},
		[]string{"reason"},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "baccarat_active_sessions",
			Help: "Sessions held in memory",
		},
	)

	AutoPlayRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "baccarat_autoplay_running",
			Help: "Sessions currently auto-playing",
		},
	)
)

func Init() {
	prometheus.MustRegister(HttpRequests)
	prometheus.MustRegister(HandsPlayed)
	prometheus.MustRegister(StepBacks)
	prometheus.MustRegister(SessionsFinished)
	prometheus.MustRegister(ActiveSessions)
	prometheus.MustRegister(AutoPlayRunning)
}

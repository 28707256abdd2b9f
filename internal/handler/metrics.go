package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "speechcraft_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speechcraft_token_verifications_total",
			Help: "Total number of access token verification attempts by status.",
		},
		[]string{"status"},
	)

	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speechcraft_generations_total",
			Help: "Total number of draft generations by source (remote or fallback).",
		},
		[]string{"source"},
	)

	speechesSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "speechcraft_speeches_saved_total",
		Help: "Total number of speeches saved.",
	})

	wizardRecoveriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "speechcraft_wizard_recoveries_total",
		Help: "Total number of successful wizard state recoveries.",
	})
)

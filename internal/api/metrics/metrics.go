// Package metrics defines and registers all custom Prometheus metrics for the
// storefront admin API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at import time; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// RegistrationsTotal counts successfully registered admin accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_registrations_total",
		Help:      "Total number of admin accounts registered.",
	},
)

// LoginsTotal counts login attempts that reached a terminal outcome.
// Label:
//   - result: "success" or "unauthorized"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// OTPEmailsSentTotal counts one-time codes delivered by email.
// Label:
//   - kind: "confirm" (registration), "login", or "resend"
var OTPEmailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_emails_sent_total",
		Help:      "Total number of OTP emails sent, by kind.",
	},
	[]string{"kind"},
)

// OTPVerificationsTotal counts OTP verification attempts.
// Label:
//   - result: "success" or "mismatch"
var OTPVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verifications_total",
		Help:      "Total number of OTP verification attempts, by result.",
	},
	[]string{"result"},
)

// OrdersPlacedTotal counts orders accepted at checkout.
// Label:
//   - replay: "true" when the response came from an idempotent replay
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of checkout requests that returned an order, by replay.",
	},
	[]string{"replay"},
)

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package kpm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indicationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "e2agent_kpm_indications_sent_total",
		Help: "Number of KPM RIC indications delivered on the E2 interface",
	})

	activeSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "e2agent_kpm_subscriptions_active",
		Help: "Number of active KPM RIC subscriptions",
	})
)

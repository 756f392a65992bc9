// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package ccc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var controlRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "e2agent_ccc_control_requests_total",
	Help: "Number of CCC RIC control requests received on the E2 interface",
})

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package servicemodel defines the contract every E2 service model client of
// the agent implements.
package servicemodel

import (
	"context"

	"github.com/onosproject/e2-agent/api/e2ap"
)

// Client is an E2 service model client.
type Client interface {
	// RICControl handles a RIC control request.
	RICControl(ctx context.Context, request *e2ap.RiccontrolRequest) (response *e2ap.RiccontrolAcknowledge, failure *e2ap.RiccontrolFailure, err error)

	// RICSubscription handles a RIC subscription request.
	RICSubscription(ctx context.Context, request *e2ap.RicsubscriptionRequest) (response *e2ap.RicsubscriptionResponse, failure *e2ap.RicsubscriptionFailure, err error)

	// RICSubscriptionDelete handles a RIC subscription delete request.
	RICSubscriptionDelete(ctx context.Context, request *e2ap.RicsubscriptionDeleteRequest) (response *e2ap.RicsubscriptionDeleteResponse, failure *e2ap.RicsubscriptionDeleteFailure, err error)
}

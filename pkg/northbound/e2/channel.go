// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package e2

import (
	"context"

	"github.com/onosproject/e2-agent/api/e2ap"
)

// Channel is the northbound path of one E2 association. Service models use
// it to deliver RIC indications; the association and procedure machinery
// behind it belong to the transport layer.
type Channel interface {
	// RICIndication sends a RIC indication on the association.
	RICIndication(ctx context.Context, indication *e2ap.Ricindication) error

	// Context is canceled when the association goes down.
	Context() context.Context
}

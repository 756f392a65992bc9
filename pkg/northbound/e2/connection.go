// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package e2 holds the northbound boundary of the agent: the E2 channel
// contract the service models deliver indications on, and the connection
// scaffold towards the RIC termination. The E2AP association and procedure
// machinery behind the channel belong to the transport layer.
package e2

import (
	"context"

	"github.com/cenkalti/backoff"
	"github.com/onosproject/onos-lib-go/pkg/logging"
	"google.golang.org/grpc"
)

var log = logging.GetLogger("northbound", "e2")

// Connection is an established connection towards one RIC termination point.
type Connection struct {
	address string
	conn    *grpc.ClientConn
}

// Connect dials the RIC termination at the given address, retrying with
// exponential backoff until it connects, the context is canceled or the
// backoff's default 15-minute elapsed-time limit runs out.
func Connect(ctx context.Context, address string) (*Connection, error) {
	log.Infof("Connecting to E2 termination %s", address)
	var conn *grpc.ClientConn
	operation := func() error {
		dialCtx, cancel := context.WithTimeout(ctx, backoff.DefaultMaxInterval)
		defer cancel()
		clientConn, err := grpc.DialContext(dialCtx, address, grpc.WithInsecure(), grpc.WithBlock())
		if err != nil {
			log.Warnf("Connecting to E2 termination %s failed: %v", address, err)
			return err
		}
		conn = clientConn
		return nil
	}
	if err := backoff.Retry(operation, backoff.WithContext(backoff.NewExponentialBackOff(), ctx)); err != nil {
		return nil, err
	}
	log.Infof("Connected to E2 termination %s", address)
	return &Connection{
		address: address,
		conn:    conn,
	}, nil
}

// Address returns the termination address of the connection.
func (c *Connection) Address() string {
	return c.address
}

// ClientConn exposes the underlying gRPC connection to the transport layer.
func (c *Connection) ClientConn() *grpc.ClientConn {
	return c.conn
}

// Close tears the connection down.
func (c *Connection) Close() error {
	return c.conn.Close()
}

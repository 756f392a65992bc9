// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package e2

import "context"

type channelKey struct{}

// NewContextWithChannel attaches the E2 channel an incoming request arrived
// on to its context, so service model handlers can bind subscriptions to it.
func NewContextWithChannel(ctx context.Context, channel Channel) context.Context {
	return context.WithValue(ctx, channelKey{}, channel)
}

// ChannelFromContext extracts the E2 channel of an incoming request, if any.
func ChannelFromContext(ctx context.Context) Channel {
	if channel, ok := ctx.Value(channelKey{}).(Channel); ok {
		return channel
	}
	return nil
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package subscriptiondelete

import "github.com/onosproject/e2-agent/api/e2ap"

// SubscriptionDelete is a builder for RIC subscription delete responses and
// failures.
type SubscriptionDelete struct {
	reqID         int32
	ranFuncID     int32
	ricInstanceID int32
	cause         *e2ap.Cause
}

// NewSubscriptionDelete creates a subscription delete builder with the given options.
func NewSubscriptionDelete(options ...func(*SubscriptionDelete)) *SubscriptionDelete {
	subscriptionDelete := &SubscriptionDelete{}
	for _, option := range options {
		option(subscriptionDelete)
	}
	return subscriptionDelete
}

// WithRequestID sets the RIC requester ID.
func WithRequestID(reqID int32) func(*SubscriptionDelete) {
	return func(subscriptionDelete *SubscriptionDelete) {
		subscriptionDelete.reqID = reqID
	}
}

// WithRanFuncID sets the RAN function ID.
func WithRanFuncID(ranFuncID int32) func(*SubscriptionDelete) {
	return func(subscriptionDelete *SubscriptionDelete) {
		subscriptionDelete.ranFuncID = ranFuncID
	}
}

// WithRicInstanceID sets the RIC instance ID.
func WithRicInstanceID(ricInstanceID int32) func(*SubscriptionDelete) {
	return func(subscriptionDelete *SubscriptionDelete) {
		subscriptionDelete.ricInstanceID = ricInstanceID
	}
}

// WithCause sets the failure cause.
func WithCause(cause *e2ap.Cause) func(*SubscriptionDelete) {
	return func(subscriptionDelete *SubscriptionDelete) {
		subscriptionDelete.cause = cause
	}
}

// BuildSubscriptionDeleteResponse builds a RIC subscription delete response.
func (subscriptionDelete *SubscriptionDelete) BuildSubscriptionDeleteResponse() (*e2ap.RicsubscriptionDeleteResponse, error) {
	response := &e2ap.RicsubscriptionDeleteResponse{
		RicRequestID: e2ap.RicRequestID{
			RicRequestorID: subscriptionDelete.reqID,
			RicInstanceID:  subscriptionDelete.ricInstanceID,
		},
		RanFunctionID: subscriptionDelete.ranFuncID,
	}
	return response, nil
}

// BuildSubscriptionDeleteFailure builds a RIC subscription delete failure.
func (subscriptionDelete *SubscriptionDelete) BuildSubscriptionDeleteFailure() (*e2ap.RicsubscriptionDeleteFailure, error) {
	failure := &e2ap.RicsubscriptionDeleteFailure{
		RicRequestID: e2ap.RicRequestID{
			RicRequestorID: subscriptionDelete.reqID,
			RicInstanceID:  subscriptionDelete.ricInstanceID,
		},
		RanFunctionID: subscriptionDelete.ranFuncID,
		Cause:         subscriptionDelete.cause,
	}
	return failure, nil
}

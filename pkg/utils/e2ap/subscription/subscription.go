// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package subscription

import (
	"github.com/onosproject/e2-agent/api/e2ap"
)

// Subscription is a builder for RIC subscription responses and failures.
type Subscription struct {
	reqID              int32
	ranFuncID          int32
	ricInstanceID      int32
	actionsAccepted    []int32
	actionsNotAdmitted map[int32]*e2ap.Cause
}

// NewSubscription creates a subscription builder with the given options.
func NewSubscription(options ...func(*Subscription)) *Subscription {
	subscription := &Subscription{}
	for _, option := range options {
		option(subscription)
	}
	return subscription
}

// WithRequestID sets the RIC requester ID.
func WithRequestID(reqID int32) func(*Subscription) {
	return func(subscription *Subscription) {
		subscription.reqID = reqID
	}
}

// WithRanFuncID sets the RAN function ID.
func WithRanFuncID(ranFuncID int32) func(*Subscription) {
	return func(subscription *Subscription) {
		subscription.ranFuncID = ranFuncID
	}
}

// WithRicInstanceID sets the RIC instance ID.
func WithRicInstanceID(ricInstanceID int32) func(*Subscription) {
	return func(subscription *Subscription) {
		subscription.ricInstanceID = ricInstanceID
	}
}

// WithActionsAccepted sets the list of admitted action IDs.
func WithActionsAccepted(actionsAccepted []int32) func(*Subscription) {
	return func(subscription *Subscription) {
		subscription.actionsAccepted = actionsAccepted
	}
}

// WithActionsNotAdmitted sets the map of rejected action IDs to causes.
func WithActionsNotAdmitted(actionsNotAdmitted map[int32]*e2ap.Cause) func(*Subscription) {
	return func(subscription *Subscription) {
		subscription.actionsNotAdmitted = actionsNotAdmitted
	}
}

// GetReqID returns the RIC requester ID.
func (subscription *Subscription) GetReqID() int32 {
	return subscription.reqID
}

// GetRanFuncID returns the RAN function ID.
func (subscription *Subscription) GetRanFuncID() int32 {
	return subscription.ranFuncID
}

// GetRicInstanceID returns the RIC instance ID.
func (subscription *Subscription) GetRicInstanceID() int32 {
	return subscription.ricInstanceID
}

func (subscription *Subscription) notAdmittedList() []*e2ap.RicactionNotAdmittedItem {
	notAdmitted := make([]*e2ap.RicactionNotAdmittedItem, 0, len(subscription.actionsNotAdmitted))
	for actionID, cause := range subscription.actionsNotAdmitted {
		notAdmitted = append(notAdmitted, &e2ap.RicactionNotAdmittedItem{
			RicActionID: actionID,
			Cause:       cause,
		})
	}
	return notAdmitted
}

// BuildSubscriptionResponse builds a RIC subscription response.
func (subscription *Subscription) BuildSubscriptionResponse() (*e2ap.RicsubscriptionResponse, error) {
	response := &e2ap.RicsubscriptionResponse{
		RicRequestID: e2ap.RicRequestID{
			RicRequestorID: subscription.reqID,
			RicInstanceID:  subscription.ricInstanceID,
		},
		RanFunctionID:         subscription.ranFuncID,
		RicActionsAdmitted:    subscription.actionsAccepted,
		RicActionsNotAdmitted: subscription.notAdmittedList(),
	}
	return response, nil
}

// BuildSubscriptionFailure builds a RIC subscription failure.
func (subscription *Subscription) BuildSubscriptionFailure() (*e2ap.RicsubscriptionFailure, error) {
	failure := &e2ap.RicsubscriptionFailure{
		RicRequestID: e2ap.RicRequestID{
			RicRequestorID: subscription.reqID,
			RicInstanceID:  subscription.ricInstanceID,
		},
		RanFunctionID:         subscription.ranFuncID,
		RicActionsNotAdmitted: subscription.notAdmittedList(),
	}
	return failure, nil
}

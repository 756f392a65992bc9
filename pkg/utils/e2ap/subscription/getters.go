// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package subscription

import "github.com/onosproject/e2-agent/api/e2ap"

// GetRequesterID gets requester ID
func GetRequesterID(request *e2ap.RicsubscriptionRequest) int32 {
	return request.RicRequestID.RicRequestorID
}

// GetRanFunctionID gets RAN function ID
func GetRanFunctionID(request *e2ap.RicsubscriptionRequest) int32 {
	return request.RanFunctionID
}

// GetRicInstanceID gets RIC instance ID
func GetRicInstanceID(request *e2ap.RicsubscriptionRequest) int32 {
	return request.RicRequestID.RicInstanceID
}

// GetRicActionToBeSetupList gets the action list of a subscription request
func GetRicActionToBeSetupList(request *e2ap.RicsubscriptionRequest) []*e2ap.RicactionToBeSetupItem {
	return request.SubscriptionDetails.RicActionToBeSetupList
}

// GetRicEventTriggerDefinition gets the packed event trigger definition
func GetRicEventTriggerDefinition(request *e2ap.RicsubscriptionRequest) []byte {
	return request.SubscriptionDetails.RicEventTriggerDefinition
}

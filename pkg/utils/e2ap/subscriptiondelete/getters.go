// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package subscriptiondelete

import "github.com/onosproject/e2-agent/api/e2ap"

// GetRequesterID gets requester ID
func GetRequesterID(request *e2ap.RicsubscriptionDeleteRequest) int32 {
	return request.RicRequestID.RicRequestorID
}

// GetRanFunctionID gets ran function ID
func GetRanFunctionID(request *e2ap.RicsubscriptionDeleteRequest) int32 {
	return request.RanFunctionID
}

// GetRicInstanceID gets ric instance ID
func GetRicInstanceID(request *e2ap.RicsubscriptionDeleteRequest) int32 {
	return request.RicRequestID.RicInstanceID
}

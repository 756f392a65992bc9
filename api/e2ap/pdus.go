// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package e2ap holds the decoded slice of the E2AP PDUs the service model
// engine touches: RIC subscription, subscription delete, control and
// indication. The association and procedure machinery live in the transport
// layer; the engine only consumes these decoded shapes and hands packed
// service-model payloads back.
package e2ap

// RicRequestID identifies a RIC request instance.
type RicRequestID struct {
	RicRequestorID int32
	RicInstanceID  int32
}

// RicactionType enumerates the action types of a subscription request.
type RicactionType int32

const (
	RicactionTypeReport RicactionType = iota
	RicactionTypeInsert
	RicactionTypePolicy
)

// CauseRic enumerates RIC request causes.
type CauseRic int32

const (
	CauseRicUnspecified CauseRic = iota
	CauseRicRanFunctionIDInvalid
	CauseRicActionNotSupported
	CauseRicExcessiveActions
	CauseRicDuplicateAction
	CauseRicFunctionResourceLimit
	CauseRicRequestIDUnknown
	CauseRicControlMessageInvalid
)

// CauseMisc enumerates miscellaneous causes.
type CauseMisc int32

const (
	CauseMiscControlProcessingOverload CauseMisc = iota
	CauseMiscHardwareFailure
	CauseMiscOmIntervention
	CauseMiscUnspecified
)

// Cause is the E2AP cause choice.
type Cause struct {
	RicRequest *CauseRic
	Misc       *CauseMisc
}

// RicactionToBeSetupItem is one action of a subscription request, with the
// packed service-model action definition.
type RicactionToBeSetupItem struct {
	RicActionID         int32
	RicActionType       RicactionType
	RicActionDefinition []byte
}

// RicsubscriptionDetails carries the packed event trigger and the action list.
type RicsubscriptionDetails struct {
	RicEventTriggerDefinition []byte
	RicActionToBeSetupList    []*RicactionToBeSetupItem
}

// RicsubscriptionRequest is a decoded RIC subscription request.
type RicsubscriptionRequest struct {
	RicRequestID        RicRequestID
	RanFunctionID       int32
	SubscriptionDetails RicsubscriptionDetails
}

// RicactionNotAdmittedItem reports one rejected action with its cause.
type RicactionNotAdmittedItem struct {
	RicActionID int32
	Cause       *Cause
}

// RicsubscriptionResponse is a decoded RIC subscription response.
type RicsubscriptionResponse struct {
	RicRequestID          RicRequestID
	RanFunctionID         int32
	RicActionsAdmitted    []int32
	RicActionsNotAdmitted []*RicactionNotAdmittedItem
}

// RicsubscriptionFailure is a decoded RIC subscription failure.
type RicsubscriptionFailure struct {
	RicRequestID          RicRequestID
	RanFunctionID         int32
	RicActionsNotAdmitted []*RicactionNotAdmittedItem
}

// RicsubscriptionDeleteRequest is a decoded RIC subscription delete request.
type RicsubscriptionDeleteRequest struct {
	RicRequestID  RicRequestID
	RanFunctionID int32
}

// RicsubscriptionDeleteResponse is a decoded RIC subscription delete response.
type RicsubscriptionDeleteResponse struct {
	RicRequestID  RicRequestID
	RanFunctionID int32
}

// RicsubscriptionDeleteFailure is a decoded RIC subscription delete failure.
type RicsubscriptionDeleteFailure struct {
	RicRequestID  RicRequestID
	RanFunctionID int32
	Cause         *Cause
}

// RiccontrolAckRequest enumerates whether a control request wants an ack.
type RiccontrolAckRequest int32

const (
	RiccontrolAckRequestNoAck RiccontrolAckRequest = iota
	RiccontrolAckRequestAck
)

// RiccontrolRequest is a decoded RIC control request with packed
// service-model header and message.
type RiccontrolRequest struct {
	RicRequestID         RicRequestID
	RanFunctionID        int32
	RicCallProcessID     []byte
	RicControlHeader     []byte
	RicControlMessage    []byte
	RicControlAckRequest RiccontrolAckRequest
}

// RiccontrolAcknowledge is a decoded RIC control acknowledge.
type RiccontrolAcknowledge struct {
	RicRequestID      RicRequestID
	RanFunctionID     int32
	RicCallProcessID  []byte
	RicControlOutcome []byte
}

// RiccontrolFailure is a decoded RIC control failure.
type RiccontrolFailure struct {
	RicRequestID      RicRequestID
	RanFunctionID     int32
	RicCallProcessID  []byte
	Cause             *Cause
	RicControlOutcome []byte
}

// Ricindication is a decoded RIC indication with packed service-model header
// and message.
type Ricindication struct {
	RicRequestID         RicRequestID
	RanFunctionID        int32
	RicActionID          int32
	RicIndicationSn      int32
	RicIndicationHeader  []byte
	RicIndicationMessage []byte
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package indication

import (
	"github.com/onosproject/onos-lib-go/pkg/errors"

	"github.com/onosproject/e2-agent/api/e2ap"
)

// Indication is a builder for RIC indications.
type Indication struct {
	reqID             int32
	ranFuncID         int32
	ricInstanceID     int32
	actionID          int32
	indicationSn      int32
	indicationHeader  []byte
	indicationMessage []byte
}

// NewIndication creates an indication builder with the given options.
func NewIndication(options ...func(*Indication)) *Indication {
	indication := &Indication{}
	for _, option := range options {
		option(indication)
	}
	return indication
}

// WithRequestID sets the RIC requester ID.
func WithRequestID(reqID int32) func(*Indication) {
	return func(indication *Indication) {
		indication.reqID = reqID
	}
}

// WithRanFuncID sets the RAN function ID.
func WithRanFuncID(ranFuncID int32) func(*Indication) {
	return func(indication *Indication) {
		indication.ranFuncID = ranFuncID
	}
}

// WithRicInstanceID sets the RIC instance ID.
func WithRicInstanceID(ricInstanceID int32) func(*Indication) {
	return func(indication *Indication) {
		indication.ricInstanceID = ricInstanceID
	}
}

// WithActionID sets the RIC action ID.
func WithActionID(actionID int32) func(*Indication) {
	return func(indication *Indication) {
		indication.actionID = actionID
	}
}

// WithIndicationSN sets the indication sequence number.
func WithIndicationSN(indicationSn int32) func(*Indication) {
	return func(indication *Indication) {
		indication.indicationSn = indicationSn
	}
}

// WithIndicationHeader sets the packed indication header.
func WithIndicationHeader(indicationHeader []byte) func(*Indication) {
	return func(indication *Indication) {
		indication.indicationHeader = indicationHeader
	}
}

// WithIndicationMessage sets the packed indication message.
func WithIndicationMessage(indicationMessage []byte) func(*Indication) {
	return func(indication *Indication) {
		indication.indicationMessage = indicationMessage
	}
}

// Build builds the RIC indication.
func (indication *Indication) Build() (*e2ap.Ricindication, error) {
	if indication.indicationHeader == nil {
		return nil, errors.New(errors.Invalid, "indication header is not set")
	}
	if indication.indicationMessage == nil {
		return nil, errors.New(errors.Invalid, "indication message is not set")
	}
	ricIndication := &e2ap.Ricindication{
		RicRequestID: e2ap.RicRequestID{
			RicRequestorID: indication.reqID,
			RicInstanceID:  indication.ricInstanceID,
		},
		RanFunctionID:        indication.ranFuncID,
		RicActionID:          indication.actionID,
		RicIndicationSn:      indication.indicationSn,
		RicIndicationHeader:  indication.indicationHeader,
		RicIndicationMessage: indication.indicationMessage,
	}
	return ricIndication, nil
}

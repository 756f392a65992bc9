// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package control

import "github.com/onosproject/e2-agent/api/e2ap"

// GetRequesterID gets requester ID
func GetRequesterID(request *e2ap.RiccontrolRequest) int32 {
	return request.RicRequestID.RicRequestorID
}

// GetRanFunctionID gets RAN function ID
func GetRanFunctionID(request *e2ap.RiccontrolRequest) int32 {
	return request.RanFunctionID
}

// GetRicInstanceID gets RIC instance ID
func GetRicInstanceID(request *e2ap.RiccontrolRequest) int32 {
	return request.RicRequestID.RicInstanceID
}

// Control is a builder for RIC control acknowledgements and failures.
type Control struct {
	reqID          int32
	ranFuncID      int32
	ricInstanceID  int32
	callProcessID  []byte
	controlOutcome []byte
	cause          *e2ap.Cause
}

// NewControl creates a control builder with the given options.
func NewControl(options ...func(*Control)) *Control {
	control := &Control{}
	for _, option := range options {
		option(control)
	}
	return control
}

// WithRequestID sets the RIC requester ID.
func WithRequestID(reqID int32) func(*Control) {
	return func(control *Control) {
		control.reqID = reqID
	}
}

// WithRanFuncID sets the RAN function ID.
func WithRanFuncID(ranFuncID int32) func(*Control) {
	return func(control *Control) {
		control.ranFuncID = ranFuncID
	}
}

// WithRicInstanceID sets the RIC instance ID.
func WithRicInstanceID(ricInstanceID int32) func(*Control) {
	return func(control *Control) {
		control.ricInstanceID = ricInstanceID
	}
}

// WithCallProcessID sets the RIC call process ID.
func WithCallProcessID(callProcessID []byte) func(*Control) {
	return func(control *Control) {
		control.callProcessID = callProcessID
	}
}

// WithControlOutcome sets the packed control outcome.
func WithControlOutcome(controlOutcome []byte) func(*Control) {
	return func(control *Control) {
		control.controlOutcome = controlOutcome
	}
}

// WithCause sets the failure cause.
func WithCause(cause *e2ap.Cause) func(*Control) {
	return func(control *Control) {
		control.cause = cause
	}
}

// BuildControlAcknowledge builds a RIC control acknowledge.
func (control *Control) BuildControlAcknowledge() (*e2ap.RiccontrolAcknowledge, error) {
	acknowledge := &e2ap.RiccontrolAcknowledge{
		RicRequestID: e2ap.RicRequestID{
			RicRequestorID: control.reqID,
			RicInstanceID:  control.ricInstanceID,
		},
		RanFunctionID:     control.ranFuncID,
		RicCallProcessID:  control.callProcessID,
		RicControlOutcome: control.controlOutcome,
	}
	return acknowledge, nil
}

// BuildControlFailure builds a RIC control failure.
func (control *Control) BuildControlFailure() (*e2ap.RiccontrolFailure, error) {
	failure := &e2ap.RiccontrolFailure{
		RicRequestID: e2ap.RicRequestID{
			RicRequestorID: control.reqID,
			RicInstanceID:  control.ricInstanceID,
		},
		RanFunctionID:     control.ranFuncID,
		RicCallProcessID:  control.callProcessID,
		Cause:             control.cause,
		RicControlOutcome: control.controlOutcome,
	}
	return failure, nil
}

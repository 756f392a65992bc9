// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package ccc implements the E2SM-CCC service model client of the agent: the
// style-2 cell configuration control service and its O-RRMPolicyRatio
// executor.
package ccc

import (
	"context"

	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/onosproject/onos-lib-go/pkg/logging"

	"github.com/onosproject/e2-agent/api/e2ap"
	cccapi "github.com/onosproject/e2-agent/api/e2sm/ccc"
	"github.com/onosproject/e2-agent/api/e2sm/common"
	"github.com/onosproject/e2-agent/pkg/model"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
	"github.com/onosproject/e2-agent/pkg/servicemodel"
	"github.com/onosproject/e2-agent/pkg/servicemodel/registry"
	"github.com/onosproject/e2-agent/pkg/store/subscriptions"
	controlutils "github.com/onosproject/e2-agent/pkg/utils/e2ap/control"
)

var _ servicemodel.Client = &Client{}

var log = logging.GetLogger("sm", "ccc")

const (
	modelVersion         = "v1"
	ranFunctionShortName = "ORAN-E2SM-CCC"
	ranFunctionE2SmOid   = "1.3.6.1.4.1.53148.1.1.2.4"
	controlStyleType     = 2
)

// Client is the CCC service model client.
type Client struct {
	ServiceModel *registry.ServiceModel
	codec        modelplugins.CccCodec
	executors    map[string]controlActionExecutor
}

// NewServiceModel creates the CCC service model for the given node, wired to
// its configurator.
func NewServiceModel(node model.Node, agentModel *model.Model, modelPluginRegistry modelplugins.ModelRegistry,
	subStore subscriptions.Store, configurator Configurator) (registry.ServiceModel, error) {
	cccSm := registry.ServiceModel{
		RanFunctionID:       registry.Ccc,
		ModelName:           ranFunctionShortName,
		Revision:            1,
		OID:                 ranFunctionE2SmOid,
		Version:             modelVersion,
		ModelPluginRegistry: modelPluginRegistry,
		Node:                node,
		Model:               agentModel,
		Subscriptions:       subStore,
	}
	cccClient := &Client{
		ServiceModel: &cccSm,
		executors:    make(map[string]controlActionExecutor),
	}
	cccSm.Client = cccClient

	plugin, err := modelPluginRegistry.GetPlugin(modelplugins.OID(ranFunctionE2SmOid))
	if err != nil {
		log.Error(err)
		return registry.ServiceModel{}, err
	}
	codec, ok := plugin.(modelplugins.CccCodec)
	if !ok {
		return registry.ServiceModel{}, errors.New(errors.Invalid, "model plugin is not a CCC codec")
	}
	cccClient.codec = codec

	executor := newRrmPolicyRatioExecutor(configurator)
	cccClient.executors[executor.ActionName()] = executor
	return cccSm, nil
}

// controlRequestSupported checks a decoded control request: style 2, message
// format 2, NR-CGI cells with nonzero cell ids, and configuration structures
// known to the registered executors.
func (sm *Client) controlRequestSupported(header *cccapi.ControlHeader, message *cccapi.ControlMessage) bool {
	if header.ControlHeaderFormat1 == nil || header.ControlHeaderFormat1.RicStyleType != controlStyleType {
		return false
	}
	if message.ControlMessageFormat2 == nil || len(message.ControlMessageFormat2.ListOfCellsControl) == 0 {
		return false
	}
	for _, cellControl := range message.ControlMessageFormat2.ListOfCellsControl {
		if len(cellControl.ListOfConfigStructures) == 0 {
			return false
		}
		if !nrCellPresent(cellControl.CellGlobalID) {
			return false
		}
		for _, configStruct := range cellControl.ListOfConfigStructures {
			executor, ok := sm.executors[configStruct.RanConfigStructureName]
			if !ok {
				return false
			}
			if !executor.ControlActionSupported(header, message) {
				return false
			}
		}
	}
	return true
}

func nrCellPresent(cgi *common.Cgi) bool {
	return cgi != nil && cgi.NrCgi != nil && cgi.NrCgi.NrCellID != 0
}

// RICControl implements control handler for the CCC service model.
func (sm *Client) RICControl(ctx context.Context, request *e2ap.RiccontrolRequest) (*e2ap.RiccontrolAcknowledge, *e2ap.RiccontrolFailure, error) {
	log.Infof("RIC control request received for e2 node %d and service model %s",
		sm.ServiceModel.Node.GnbID, sm.ServiceModel.ModelName)
	controlRequests.Inc()

	header, err := sm.codec.ControlHeaderFromASN1(request.RicControlHeader)
	if err != nil {
		log.Warn(err)
		return nil, sm.buildControlFailure(request, nil), nil
	}
	message, err := sm.codec.ControlMessageFromASN1(request.RicControlMessage)
	if err != nil {
		log.Warn(err)
		return nil, sm.buildControlFailure(request, nil), nil
	}

	if !sm.controlRequestSupported(header, message) {
		log.Warn("control request is not supported")
		cause := e2ap.CauseRicControlMessageInvalid
		failure, buildErr := controlutils.NewControl(
			controlutils.WithRequestID(controlutils.GetRequesterID(request)),
			controlutils.WithRanFuncID(controlutils.GetRanFunctionID(request)),
			controlutils.WithRicInstanceID(controlutils.GetRicInstanceID(request)),
			controlutils.WithCallProcessID(request.RicCallProcessID),
			controlutils.WithCause(&e2ap.Cause{RicRequest: &cause})).
			BuildControlFailure()
		if buildErr != nil {
			return nil, nil, buildErr
		}
		return nil, failure, nil
	}

	// All admitted structures name the same executor; dispatch once.
	firstCell := message.ControlMessageFormat2.ListOfCellsControl[0]
	executor := sm.executors[firstCell.ListOfConfigStructures[0].RanConfigStructureName]

	outcome, success, err := executor.ExecuteControlAction(ctx, message)
	if err != nil {
		return nil, nil, err
	}
	outcomeBytes, err := sm.codec.ControlOutcomeToASN1(outcome)
	if err != nil {
		return nil, nil, err
	}

	if !success {
		return nil, sm.buildControlFailure(request, outcomeBytes), nil
	}

	acknowledge, err := controlutils.NewControl(
		controlutils.WithRequestID(controlutils.GetRequesterID(request)),
		controlutils.WithRanFuncID(controlutils.GetRanFunctionID(request)),
		controlutils.WithRicInstanceID(controlutils.GetRicInstanceID(request)),
		controlutils.WithCallProcessID(request.RicCallProcessID),
		controlutils.WithControlOutcome(outcomeBytes)).
		BuildControlAcknowledge()
	if err != nil {
		return nil, nil, err
	}
	return acknowledge, nil, nil
}

// buildControlFailure builds a control failure with the unspecified cause and
// the mirrored failed-structures outcome, when present.
func (sm *Client) buildControlFailure(request *e2ap.RiccontrolRequest, outcomeBytes []byte) *e2ap.RiccontrolFailure {
	cause := e2ap.CauseMiscUnspecified
	failure, err := controlutils.NewControl(
		controlutils.WithRequestID(controlutils.GetRequesterID(request)),
		controlutils.WithRanFuncID(controlutils.GetRanFunctionID(request)),
		controlutils.WithRicInstanceID(controlutils.GetRicInstanceID(request)),
		controlutils.WithCallProcessID(request.RicCallProcessID),
		controlutils.WithControlOutcome(outcomeBytes),
		controlutils.WithCause(&e2ap.Cause{Misc: &cause})).
		BuildControlFailure()
	if err != nil {
		log.Error(err)
		return nil
	}
	return failure
}

// RICSubscription implements subscription handler for the CCC service model;
// report services are not provided.
func (sm *Client) RICSubscription(ctx context.Context, request *e2ap.RicsubscriptionRequest) (*e2ap.RicsubscriptionResponse, *e2ap.RicsubscriptionFailure, error) {
	return nil, nil, errors.New(errors.NotSupported, "Subscription operation is not supported")
}

// RICSubscriptionDelete implements subscription delete handler for the CCC
// service model.
func (sm *Client) RICSubscriptionDelete(ctx context.Context, request *e2ap.RicsubscriptionDeleteRequest) (*e2ap.RicsubscriptionDeleteResponse, *e2ap.RicsubscriptionDeleteFailure, error) {
	return nil, nil, errors.New(errors.NotSupported, "Subscription delete operation is not supported")
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package kpm implements the E2SM-KPM service model client of the agent:
// subscription admission, the per-style report services and the periodic
// indication reporting they drive.
package kpm

import (
	"context"
	"sync"
	"time"

	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/onosproject/onos-lib-go/pkg/logging"

	"github.com/onosproject/e2-agent/api/e2ap"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics/catalog"
	"github.com/onosproject/e2-agent/pkg/metrics/provider"
	"github.com/onosproject/e2-agent/pkg/model"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
	e2chan "github.com/onosproject/e2-agent/pkg/northbound/e2"
	"github.com/onosproject/e2-agent/pkg/servicemodel"
	"github.com/onosproject/e2-agent/pkg/servicemodel/registry"
	"github.com/onosproject/e2-agent/pkg/store/subscriptions"
	e2apIndicationUtils "github.com/onosproject/e2-agent/pkg/utils/e2ap/indication"
	subutils "github.com/onosproject/e2-agent/pkg/utils/e2ap/subscription"
	subdeleteutils "github.com/onosproject/e2-agent/pkg/utils/e2ap/subscriptiondelete"
	"github.com/onosproject/e2-agent/pkg/utils/e2sm/kpm/measurements"
	"github.com/onosproject/e2-agent/pkg/utils/e2sm/kpm/ranfuncdescription"
	"github.com/onosproject/e2-agent/pkg/utils/e2sm/kpm/reportstyle"
)

var _ servicemodel.Client = &Client{}

var log = logging.GetLogger("sm", "kpm")

const (
	modelVersion           = "v3"
	ranFunctionDescription = "KPM Monitor"
	ranFunctionShortName   = "ORAN-E2SM-KPM"
	ranFunctionE2SmOid     = "1.3.6.1.4.1.53148.1.3.2.2"
	ranFunctionInstance    = 1
	ricEventTriggerStyle   = 1
	ricEventTriggerFormat  = 1
)

// Advertised report styles; the action format matches the style type.
var reportStyles = []struct {
	styleType int32
	styleName string
	hdrFormat int32
	msgFormat int32
	ueLevel   bool
}{
	{1, "E2 Node Measurement", 1, 1, false},
	{2, "E2 Node Measurement for a single UE", 1, 1, true},
	{3, "Condition-based, UE-level E2 Node Measurement", 1, 2, true},
	{4, "Common Condition-based, UE-level Measurement", 1, 3, true},
	{5, "E2 Node Measurement for multiple UEs", 1, 3, true},
}

// Client is the KPM service model client.
type Client struct {
	ServiceModel *registry.ServiceModel
	codec        modelplugins.KpmCodec

	mu             sync.Mutex
	reportServices map[subscriptions.ID]map[int32]reportService
	cancels        map[subscriptions.ID]context.CancelFunc
}

// NewServiceModel creates the KPM service model for the given node.
func NewServiceModel(node model.Node, agentModel *model.Model, modelPluginRegistry modelplugins.ModelRegistry,
	subStore subscriptions.Store, measProvider provider.MeasProvider) (registry.ServiceModel, error) {
	kpmSm := registry.ServiceModel{
		RanFunctionID:       registry.Kpm,
		ModelName:           ranFunctionShortName,
		Revision:            1,
		OID:                 ranFunctionE2SmOid,
		Version:             modelVersion,
		ModelPluginRegistry: modelPluginRegistry,
		Node:                node,
		Model:               agentModel,
		Subscriptions:       subStore,
		MeasProvider:        measProvider,
	}
	kpmClient := &Client{
		ServiceModel:   &kpmSm,
		reportServices: make(map[subscriptions.ID]map[int32]reportService),
		cancels:        make(map[subscriptions.ID]context.CancelFunc),
	}
	kpmSm.Client = kpmClient

	plugin, err := modelPluginRegistry.GetPlugin(modelplugins.OID(ranFunctionE2SmOid))
	if err != nil {
		log.Error(err)
		return registry.ServiceModel{}, err
	}
	codec, ok := plugin.(modelplugins.KpmCodec)
	if !ok {
		return registry.ServiceModel{}, errors.New(errors.Invalid, "model plugin is not a KPM codec")
	}
	kpmClient.codec = codec

	ranFuncDescBytes, err := kpmClient.createRanFunctionDescription(measProvider)
	if err != nil {
		log.Error(err)
		return registry.ServiceModel{}, err
	}
	kpmSm.Description = ranFuncDescBytes
	return kpmSm, nil
}

// createRanFunctionDescription advertises the event trigger and report styles
// together with the metrics the provider can serve per style.
func (sm *Client) createRanFunctionDescription(measProvider provider.MeasProvider) ([]byte, error) {
	ricEventTriggerStyleList := []*kpmapi.RicEventTriggerStyleItem{
		{
			RicEventTriggerStyleType:  ricEventTriggerStyle,
			RicEventTriggerStyleName:  "Periodic Report",
			RicEventTriggerFormatType: ricEventTriggerFormat,
		},
	}

	ricReportStyleList := make([]*kpmapi.RicReportStyleItem, 0, len(reportStyles))
	for _, style := range reportStyles {
		scope := catalog.NodeScope
		if style.ueLevel {
			scope = catalog.UEScope
		}
		measInfoActionList := make([]*kpmapi.MeasurementInfoActionItem, 0)
		for i, name := range measProvider.SupportedMetricNames(scope) {
			measInfoActionList = append(measInfoActionList,
				measurements.NewMeasurementInfoActionItem(name, int64(i+1)))
		}
		reportStyleItem := reportstyle.NewReportStyleItem(
			reportstyle.WithRICStyleType(style.styleType),
			reportstyle.WithRICStyleName(style.styleName),
			reportstyle.WithRICFormatType(style.styleType),
			reportstyle.WithMeasInfoActionList(measInfoActionList),
			reportstyle.WithIndicationHdrFormatType(style.hdrFormat),
			reportstyle.WithIndicationMsgFormatType(style.msgFormat)).
			Build()
		ricReportStyleList = append(ricReportStyleList, reportStyleItem)
	}

	ranFuncDesc, err := ranfuncdescription.NewRANFunctionDescription(
		ranfuncdescription.WithRANFunctionShortName(ranFunctionShortName),
		ranfuncdescription.WithRANFunctionE2SmOID(ranFunctionE2SmOid),
		ranfuncdescription.WithRANFunctionDescription(ranFunctionDescription),
		ranfuncdescription.WithRANFunctionInstance(ranFunctionInstance),
		ranfuncdescription.WithRICEventTriggerStyleList(ricEventTriggerStyleList),
		ranfuncdescription.WithRICReportStyleList(ricReportStyleList)).
		Build()
	if err != nil {
		return nil, err
	}
	return sm.codec.RanFunctionDescriptionToASN1(ranFuncDesc)
}

// getReportPeriod extracts the reporting period from the packed event trigger
// definition of a subscription request.
func (sm *Client) getReportPeriod(request *e2ap.RicsubscriptionRequest) (uint64, error) {
	eventTrigger, err := sm.codec.EventTriggerDefinitionFromASN1(subutils.GetRicEventTriggerDefinition(request))
	if err != nil {
		return 0, err
	}
	if eventTrigger.ReportingPeriod == 0 {
		return 0, errors.New(errors.Invalid, "reporting period must be positive")
	}
	return eventTrigger.ReportingPeriod, nil
}

// getActionDefinitions decodes the action definitions of the accepted actions.
func (sm *Client) getActionDefinitions(actionList []*e2ap.RicactionToBeSetupItem,
	ricActionsAccepted []int32) (map[int32]*kpmapi.ActionDefinition, error) {
	actionDefinitions := make(map[int32]*kpmapi.ActionDefinition)
	for _, action := range actionList {
		for _, acceptedID := range ricActionsAccepted {
			if action.RicActionID != acceptedID {
				continue
			}
			actionDefinition, err := sm.codec.ActionDefinitionFromASN1(action.RicActionDefinition)
			if err != nil {
				return nil, err
			}
			actionDefinitions[action.RicActionID] = actionDefinition
		}
	}
	return actionDefinitions, nil
}

// RICControl implements control handler for the KPM service model.
func (sm *Client) RICControl(ctx context.Context, request *e2ap.RiccontrolRequest) (*e2ap.RiccontrolAcknowledge, *e2ap.RiccontrolFailure, error) {
	return nil, nil, errors.New(errors.NotSupported, "Control operation is not supported")
}

// RICSubscription implements subscription handler for the KPM service model.
func (sm *Client) RICSubscription(ctx context.Context, request *e2ap.RicsubscriptionRequest) (*e2ap.RicsubscriptionResponse, *e2ap.RicsubscriptionFailure, error) {
	log.Infof("RIC Subscription request received for e2 node %d and service model %s",
		sm.ServiceModel.Node.GnbID, sm.ServiceModel.ModelName)
	var ricActionsAccepted []int32
	ricActionsNotAdmitted := make(map[int32]*e2ap.Cause)
	actionList := subutils.GetRicActionToBeSetupList(request)
	reqID := subutils.GetRequesterID(request)
	ranFuncID := subutils.GetRanFunctionID(request)
	ricInstanceID := subutils.GetRicInstanceID(request)

	for _, action := range actionList {
		// The KPM service model supports admitted report actions only;
		// INSERT and POLICY actions are not admitted.
		if action.RicActionType == e2ap.RicactionTypeReport && sm.actionSupported(action) {
			ricActionsAccepted = append(ricActionsAccepted, action.RicActionID)
			continue
		}
		cause := e2ap.CauseRicActionNotSupported
		ricActionsNotAdmitted[action.RicActionID] = &e2ap.Cause{RicRequest: &cause}
	}

	subscription := subutils.NewSubscription(
		subutils.WithRequestID(reqID),
		subutils.WithRanFuncID(ranFuncID),
		subutils.WithRicInstanceID(ricInstanceID),
		subutils.WithActionsAccepted(ricActionsAccepted),
		subutils.WithActionsNotAdmitted(ricActionsNotAdmitted))

	// At least one action must be admitted, otherwise the subscription fails.
	if len(ricActionsAccepted) == 0 {
		log.Warn("no action is accepted")
		subscriptionFailure, err := subscription.BuildSubscriptionFailure()
		if err != nil {
			return nil, nil, err
		}
		return nil, subscriptionFailure, nil
	}

	reportInterval, err := sm.getReportPeriod(request)
	if err != nil {
		log.Warn(err)
		subscriptionFailure, err := subscription.BuildSubscriptionFailure()
		if err != nil {
			return nil, nil, err
		}
		return nil, subscriptionFailure, nil
	}

	actionDefinitions, err := sm.getActionDefinitions(actionList, ricActionsAccepted)
	if err != nil {
		log.Warn(err)
		subscriptionFailure, err := subscription.BuildSubscriptionFailure()
		if err != nil {
			return nil, nil, err
		}
		return nil, subscriptionFailure, nil
	}

	services := make(map[int32]reportService)
	for actionID, actionDefinition := range actionDefinitions {
		service, err := newReportService(actionDefinition, sm.ServiceModel.MeasProvider, sm.codec)
		if err != nil {
			log.Warn(err)
			continue
		}
		services[actionID] = service
	}

	subID := subscriptions.NewID(ricInstanceID, reqID, ranFuncID)
	sub := &subscriptions.Subscription{
		ID:             subID,
		ReqID:          reqID,
		RanFuncID:      ranFuncID,
		RicInstanceID:  ricInstanceID,
		ReportInterval: time.Duration(reportInterval) * time.Millisecond,
		E2Channel:      e2chan.ChannelFromContext(ctx),
		Actions:        actionList,
	}
	if err := sm.ServiceModel.Subscriptions.Add(sub); err != nil {
		return nil, nil, err
	}
	reportCtx, cancel := context.WithCancel(context.Background())
	sm.mu.Lock()
	sm.reportServices[subID] = services
	sm.cancels[subID] = cancel
	sm.mu.Unlock()
	activeSubscriptions.Inc()

	subscriptionResponse, err := subscription.BuildSubscriptionResponse()
	if err != nil {
		cancel()
		return nil, nil, err
	}
	go func() {
		err := sm.reportIndication(reportCtx, sub)
		if err != nil {
			log.Warn(err)
		}
	}()
	return subscriptionResponse, nil, nil
}

// reportIndication drives the report services of one subscription: on each
// tick of the event trigger's reporting period every service collects one
// row, and ready windows are packed and delivered on the subscription's E2
// channel. The granularity periods of the actions do not set the tick.
func (sm *Client) reportIndication(ctx context.Context, sub *subscriptions.Subscription) error {
	sub.Ticker = time.NewTicker(sub.ReportInterval)
	var indicationSn int32
	channelCtx := context.Background()
	if sub.E2Channel != nil {
		channelCtx = sub.E2Channel.Context()
	}
	for {
		select {
		case <-sub.Ticker.C:
			log.Debugf("Sending Indication Report for subscription: %s", sub.ID)
			sm.mu.Lock()
			services := sm.reportServices[sub.ID]
			sm.mu.Unlock()
			if services == nil {
				return nil
			}
			for actionID, service := range services {
				if !service.CollectMeasurements() {
					continue
				}
				if !service.IndMsgReady() {
					log.Debugf("Indication message not ready for subscription %s action %d", sub.ID, actionID)
					continue
				}
				if err := sm.sendRicIndication(ctx, sub, actionID, service, indicationSn); err != nil {
					log.Error("creating indication message failed", err)
					continue
				}
				indicationSn++
			}

		case <-ctx.Done():
			sub.Ticker.Stop()
			return nil

		case <-channelCtx.Done():
			log.Debug("E2 channel context is done")
			sub.Ticker.Stop()
			return nil
		}
	}
}

func (sm *Client) sendRicIndication(ctx context.Context, sub *subscriptions.Subscription,
	actionID int32, service reportService, indicationSn int32) error {
	indicationHeaderBytes, err := service.IndicationHeader()
	if err != nil {
		return err
	}
	indicationMessageBytes, err := service.IndicationMessage()
	if err != nil {
		return err
	}

	indication := e2apIndicationUtils.NewIndication(
		e2apIndicationUtils.WithRicInstanceID(sub.RicInstanceID),
		e2apIndicationUtils.WithRanFuncID(sub.RanFuncID),
		e2apIndicationUtils.WithRequestID(sub.ReqID),
		e2apIndicationUtils.WithActionID(actionID),
		e2apIndicationUtils.WithIndicationSN(indicationSn),
		e2apIndicationUtils.WithIndicationHeader(indicationHeaderBytes),
		e2apIndicationUtils.WithIndicationMessage(indicationMessageBytes))

	ricIndication, err := indication.Build()
	if err != nil {
		return err
	}
	if sub.E2Channel == nil {
		return errors.New(errors.Unavailable, "subscription has no E2 channel")
	}
	if err := sub.E2Channel.RICIndication(ctx, ricIndication); err != nil {
		return err
	}
	indicationsSent.Inc()
	return nil
}

// RICSubscriptionDelete implements subscription delete handler for the KPM
// service model.
func (sm *Client) RICSubscriptionDelete(ctx context.Context, request *e2ap.RicsubscriptionDeleteRequest) (*e2ap.RicsubscriptionDeleteResponse, *e2ap.RicsubscriptionDeleteFailure, error) {
	log.Infof("RIC subscription delete request is received for e2 node %d and service model %s",
		sm.ServiceModel.Node.GnbID, sm.ServiceModel.ModelName)
	reqID := subdeleteutils.GetRequesterID(request)
	ranFuncID := subdeleteutils.GetRanFunctionID(request)
	ricInstanceID := subdeleteutils.GetRicInstanceID(request)
	subID := subscriptions.NewID(ricInstanceID, reqID, ranFuncID)
	sub, err := sm.ServiceModel.Subscriptions.Get(subID)
	if err != nil {
		return nil, nil, err
	}
	subscriptionDelete := subdeleteutils.NewSubscriptionDelete(
		subdeleteutils.WithRequestID(reqID),
		subdeleteutils.WithRanFuncID(ranFuncID),
		subdeleteutils.WithRicInstanceID(ricInstanceID))
	subDeleteResponse, err := subscriptionDelete.BuildSubscriptionDeleteResponse()
	if err != nil {
		return nil, nil, err
	}
	// Stops the goroutine sending the indication messages and releases the
	// report services after the current tick completes.
	if sub.Ticker != nil {
		sub.Ticker.Stop()
	}
	sm.mu.Lock()
	if cancel, ok := sm.cancels[subID]; ok {
		cancel()
		delete(sm.cancels, subID)
	}
	delete(sm.reportServices, subID)
	sm.mu.Unlock()
	if err := sm.ServiceModel.Subscriptions.Remove(subID); err != nil {
		return nil, nil, err
	}
	activeSubscriptions.Dec()
	return subDeleteResponse, nil, nil
}

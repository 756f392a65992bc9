// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package kpm

import (
	"github.com/onosproject/e2-agent/api/e2ap"
	"github.com/onosproject/e2-agent/api/e2sm/common"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics/catalog"
)

// actionSupported gates one subscription action: it decodes the packed action
// definition and admits it only if every metric, label, scope, UE and cell it
// references can be served. Admission is a pure function of the action and
// the provider state; the report services trust it for the subscription's
// lifetime.
func (sm *Client) actionSupported(action *e2ap.RicactionToBeSetupItem) bool {
	actionDef, err := sm.codec.ActionDefinitionFromASN1(action.RicActionDefinition)
	if err != nil {
		log.Warnf("Unknown service model payload, do not admit action %d (type %d): %v",
			action.RicActionID, action.RicActionType, err)
		return false
	}
	log.Infof("Admitting action %d (type %d)", action.RicActionID, action.RicActionType)

	switch actionDef.RicStyleType {
	case 1:
		return sm.processActionDefinitionFormat1(actionDef.ActionDefinitionFormat1, catalog.NodeScope)
	case 2:
		return sm.processActionDefinitionFormat2(actionDef.ActionDefinitionFormat2)
	case 3:
		return sm.processActionDefinitionFormat3(actionDef.ActionDefinitionFormat3)
	case 4:
		return sm.processActionDefinitionFormat4(actionDef.ActionDefinitionFormat4)
	case 5:
		return sm.processActionDefinitionFormat5(actionDef.ActionDefinitionFormat5)
	}
	log.Infof("Unknown RIC style type %d, do not admit action %d (type %d)",
		actionDef.RicStyleType, action.RicActionID, action.RicActionType)
	return false
}

// processActionDefMeasInfoList admits a measurement info list at the given
// scope; a single unsupported metric rejects the whole action.
func (sm *Client) processActionDefMeasInfoList(measInfoList []*kpmapi.MeasurementInfoItem,
	scope catalog.Scope, cellScope bool) bool {
	provider := sm.ServiceModel.MeasProvider
	for _, measInfo := range measInfoList {
		labels := measInfo.LabelInfoList
		if len(labels) == 0 {
			labels = []*kpmapi.LabelInfoItem{{MeasLabel: &kpmapi.MeasurementLabel{NoLabel: true}}}
		}
		for _, labelInfo := range labels {
			if !provider.IsMetricSupported(measInfo.MeasType, labelInfo.MeasLabel, scope, cellScope) {
				log.Debugf("Metric %s not supported at %s, do not admit action",
					measInfo.MeasType.MeasName, scope)
				return false
			}
		}
	}
	return true
}

func (sm *Client) processActionDefinitionFormat1(actionDef *kpmapi.ActionDefinitionFormat1,
	scope catalog.Scope) bool {
	if actionDef == nil {
		return false
	}
	if actionDef.GranulPeriod == 0 {
		log.Debug("Action granularity period of 0 is not supported, do not admit action")
		return false
	}
	cellScope := actionDef.CellGlobalID != nil
	if cellScope && !sm.ServiceModel.MeasProvider.IsCellSupported(actionDef.CellGlobalID) {
		log.Debug("Cell not available, do not admit action")
		return false
	}
	return sm.processActionDefMeasInfoList(actionDef.MeasInfoList, scope, cellScope)
}

func (sm *Client) processActionDefinitionFormat2(actionDef *kpmapi.ActionDefinitionFormat2) bool {
	if actionDef == nil {
		return false
	}
	if !sm.ServiceModel.MeasProvider.IsUeSupported(actionDef.UeID) {
		log.Debug("UE not available, do not admit action")
		return false
	}
	return sm.processActionDefinitionFormat1(actionDef.SubscriptInfo, catalog.UEScope)
}

func (sm *Client) processActionDefinitionFormat3(actionDef *kpmapi.ActionDefinitionFormat3) bool {
	if actionDef == nil {
		return false
	}
	if actionDef.GranulPeriod == 0 {
		log.Debug("Action granularity period of 0 is not supported, do not admit action")
		return false
	}
	provider := sm.ServiceModel.MeasProvider
	cellScope := actionDef.CellGlobalID != nil
	if cellScope && !provider.IsCellSupported(actionDef.CellGlobalID) {
		log.Debug("Cell not available, do not admit action")
		return false
	}
	for _, measCond := range actionDef.MeasCondList {
		for _, matchingCond := range measCond.MatchingCond {
			switch {
			case matchingCond.TestCondInfo != nil:
				if !provider.IsTestCondSupported(matchingCond.TestCondInfo.TestType) {
					log.Debug("Matching UE test condition not supported, do not admit action")
					return false
				}
			case matchingCond.MeasLabel != nil:
				if !provider.IsMetricSupported(measCond.MeasType, matchingCond.MeasLabel, catalog.UEScope, cellScope) {
					log.Debug("Matching UE measurement label not supported, do not admit action")
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}

func (sm *Client) processActionDefinitionFormat4(actionDef *kpmapi.ActionDefinitionFormat4) bool {
	if actionDef == nil {
		return false
	}
	for _, matchingCond := range actionDef.MatchingUeCondList {
		if matchingCond.TestCondInfo == nil ||
			!sm.ServiceModel.MeasProvider.IsTestCondSupported(matchingCond.TestCondInfo.TestType) {
			log.Debug("Matching UE test condition not supported, do not admit action")
			return false
		}
	}
	return sm.processActionDefinitionFormat1(actionDef.SubscriptionInfo, catalog.UEScope)
}

func (sm *Client) processActionDefinitionFormat5(actionDef *kpmapi.ActionDefinitionFormat5) bool {
	if actionDef == nil {
		return false
	}
	// If at least one UE is not present, do not admit.
	for _, ueItem := range actionDef.MatchingUeIDList {
		if !sm.ServiceModel.MeasProvider.IsUeSupported(ueItem.UeID) {
			log.Debug("UE not available, do not admit action")
			return false
		}
	}
	return sm.processActionDefinitionFormat1(actionDef.SubscriptionInfo, catalog.UEScope)
}

// ueIDsOf extracts the UE ids of a format-5 matching list.
func ueIDsOf(items []*kpmapi.UeIDItem) []*common.UeID {
	ueIDs := make([]*common.UeID, 0, len(items))
	for _, item := range items {
		ueIDs = append(ueIDs, item.UeID)
	}
	return ueIDs
}

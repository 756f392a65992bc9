// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package ccc

import (
	"context"

	cccapi "github.com/onosproject/e2-agent/api/e2sm/ccc"
)

// controlActionExecutor applies the control requests naming one RAN
// configuration structure.
type controlActionExecutor interface {
	// ActionName names the configuration structure this executor serves.
	ActionName() string

	// ControlActionSupported reports whether a decoded control request can
	// be applied.
	ControlActionSupported(header *cccapi.ControlHeader, message *cccapi.ControlMessage) bool

	// ExecuteControlAction validates the request, dispatches it to the node
	// configurator once and converts the outcome into a control outcome.
	ExecuteControlAction(ctx context.Context, message *cccapi.ControlMessage) (*cccapi.ControlOutcome, bool, error)
}

const rrmPolicyRatioStructureName = "O-RRMPolicyRatio"

// rrmPolicyRatioExecutor applies O-RRMPolicyRatio control requests through
// the node configurator.
type rrmPolicyRatioExecutor struct {
	configurator Configurator
}

func newRrmPolicyRatioExecutor(configurator Configurator) *rrmPolicyRatioExecutor {
	return &rrmPolicyRatioExecutor{
		configurator: configurator,
	}
}

func (e *rrmPolicyRatioExecutor) ActionName() string {
	return rrmPolicyRatioStructureName
}

func (e *rrmPolicyRatioExecutor) ControlActionSupported(header *cccapi.ControlHeader, message *cccapi.ControlMessage) bool {
	if header.ControlHeaderFormat1 == nil || header.ControlHeaderFormat1.RicStyleType != 2 {
		return false
	}
	if message.ControlMessageFormat2 == nil {
		return false
	}
	for _, cellControl := range message.ControlMessageFormat2.ListOfCellsControl {
		for _, configStruct := range cellControl.ListOfConfigStructures {
			if configStruct.RanConfigStructureName != rrmPolicyRatioStructureName {
				return false
			}
			newValues := configStruct.NewValuesOfAttributes
			if newValues == nil || newValues.RanConfigStructure == nil ||
				newValues.RanConfigStructure.ORrmPolicyRatio == nil {
				return false
			}
			resourceType := newValues.RanConfigStructure.ORrmPolicyRatio.ResourceType
			if resourceType == nil ||
				(*resourceType != cccapi.ResourceTypePrbDl && *resourceType != cccapi.ResourceTypePrbUl) {
				return false
			}
		}
	}
	return true
}

// convertToConfigRequest translates a control message into a configurator
// request; only the new attribute values are applied.
func convertToConfigRequest(message *cccapi.ControlMessage) *ConfigRequest {
	request := &ConfigRequest{}
	for _, cellControl := range message.ControlMessageFormat2.ListOfCellsControl {
		cellConfig := CellConfig{Cgi: cellControl.CellGlobalID}
		for _, configStruct := range cellControl.ListOfConfigStructures {
			ratio := configStruct.NewValuesOfAttributes.RanConfigStructure.ORrmPolicyRatio
			group := RrmPolicyRatioGroup{
				ResourceType:      cccapi.ResourceTypePrb,
				MinPrbPolicyRatio: ratio.RrmPolicyMinRatio,
				MaxPrbPolicyRatio: ratio.RrmPolicyMaxRatio,
				DedPrbPolicyRatio: ratio.RrmPolicyDedRatio,
			}
			if ratio.ResourceType != nil {
				group.ResourceType = *ratio.ResourceType
			}
			for _, member := range ratio.RrmPolicyMemberList {
				policyMember := RrmPolicyMember{}
				if member.PlmnID != nil {
					policyMember.PlmnID = member.PlmnID.Value
				}
				if member.Snssai != nil {
					policyMember.Sst = member.Snssai.Sst
					policyMember.Sd = member.Snssai.Sd
				}
				group.PolicyMembersList = append(group.PolicyMembersList, policyMember)
			}
			cellConfig.RrmPolicyRatioList = append(cellConfig.RrmPolicyRatioList, group)
		}
		request.Cells = append(request.Cells, cellConfig)
	}
	return request
}

// buildControlOutcome mirrors the requested structures back as accepted or
// failed items depending on the configurator outcome.
func buildControlOutcome(message *cccapi.ControlMessage, success bool) *cccapi.ControlOutcome {
	outcomeFormat2 := &cccapi.ControlOutcomeFormat2{}
	for _, cellControl := range message.ControlMessageFormat2.ListOfCellsControl {
		cellOutcome := &cccapi.CellControlOutcome{
			CellGlobalID: cellControl.CellGlobalID,
		}
		for _, configStruct := range cellControl.ListOfConfigStructures {
			if success {
				cellOutcome.RanConfigStructuresAcceptedList = append(cellOutcome.RanConfigStructuresAcceptedList,
					&cccapi.ConfigurationStructureAccepted{
						RanConfigStructureName:    configStruct.RanConfigStructureName,
						OldValuesOfAttributes:     configStruct.OldValuesOfAttributes,
						CurrentValuesOfAttributes: configStruct.NewValuesOfAttributes,
					})
			} else {
				cellOutcome.RanConfigStructuresFailedList = append(cellOutcome.RanConfigStructuresFailedList,
					&cccapi.ConfigurationStructureFailed{
						RanConfigStructureName:      configStruct.RanConfigStructureName,
						OldValuesOfAttributes:       configStruct.OldValuesOfAttributes,
						RequestedValuesOfAttributes: configStruct.NewValuesOfAttributes,
						Cause:                       cccapi.CauseUnspecified,
					})
			}
		}
		outcomeFormat2.ListOfCellsForControlOutcome = append(outcomeFormat2.ListOfCellsForControlOutcome, cellOutcome)
	}
	return &cccapi.ControlOutcome{ControlOutcomeFormat2: outcomeFormat2}
}

func (e *rrmPolicyRatioExecutor) ExecuteControlAction(ctx context.Context,
	message *cccapi.ControlMessage) (*cccapi.ControlOutcome, bool, error) {
	request := convertToConfigRequest(message)

	for _, cellConfig := range request.Cells {
		// An empty policy list, a policy without members or a missing ratio
		// fails the request before it reaches the configurator.
		if len(cellConfig.RrmPolicyRatioList) == 0 {
			return buildControlOutcome(message, false), false, nil
		}
		for _, policy := range cellConfig.RrmPolicyRatioList {
			if len(policy.PolicyMembersList) == 0 {
				return buildControlOutcome(message, false), false, nil
			}
			if policy.MinPrbPolicyRatio == nil || policy.MaxPrbPolicyRatio == nil || policy.DedPrbPolicyRatio == nil {
				return buildControlOutcome(message, false), false, nil
			}
		}
	}

	logConfigRequest(request)

	// Single configurator call; no partial application across the request.
	response, err := e.configurator.HandleConfigRequest(ctx, request)
	if err != nil {
		log.Warn(err)
		return buildControlOutcome(message, false), false, nil
	}
	return buildControlOutcome(message, response.Success), response.Success, nil
}

func logConfigRequest(request *ConfigRequest) {
	for _, cellConfig := range request.Cells {
		if cellConfig.Cgi != nil && cellConfig.Cgi.NrCgi != nil {
			log.Infof("O-RRMPolicyRatio control request for NR-CGI [plmn: %x, nci: %d]",
				cellConfig.Cgi.NrCgi.PlmnID.Value, cellConfig.Cgi.NrCgi.NrCellID)
		}
		for _, policy := range cellConfig.RrmPolicyRatioList {
			log.Infof("RRM policy: resource type %d, min %d, max %d, dedicated %d, members %d",
				policy.ResourceType, *policy.MinPrbPolicyRatio, *policy.MaxPrbPolicyRatio,
				*policy.DedPrbPolicyRatio, len(policy.PolicyMembersList))
		}
	}
}

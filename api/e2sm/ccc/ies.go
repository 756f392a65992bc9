// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package ccc holds the decoded shapes of the E2SM-CCC IEs used by the cell
// configuration and control service: control header format 1, control message
// format 2 and control outcome format 2, together with the O-RRMPolicyRatio
// configuration structure they carry.
package ccc

import "github.com/onosproject/e2-agent/api/e2sm/common"

// ResourceType enumerates the resource a policy ratio applies to.
type ResourceType int32

const (
	ResourceTypePrb ResourceType = iota
	ResourceTypePrbUl
	ResourceTypePrbDl
)

// Cause enumerates the failure causes of a control outcome.
type Cause int32

const (
	CauseNotSupported Cause = iota
	CauseNotAvailable
	CauseIncompatibleState
	CauseJSONError
	CauseSemanticError
	CauseUnspecified
)

// RrmPolicyMember identifies one slice member of an RRM policy.
type RrmPolicyMember struct {
	PlmnID *common.PlmnIdentity
	Snssai *common.Snssai
}

// ORrmPolicyRatio is the O-RRMPolicyRatio configuration structure with its
// min/max/dedicated PRB ratios in percent.
type ORrmPolicyRatio struct {
	ResourceType        *ResourceType
	RrmPolicyMemberList []*RrmPolicyMember
	RrmPolicyMinRatio   *int32
	RrmPolicyMaxRatio   *int32
	RrmPolicyDedRatio   *int32
}

// RanConfigurationStructure is the configuration-structure choice. Only
// O-RRMPolicyRatio is currently modelled.
type RanConfigurationStructure struct {
	ORrmPolicyRatio *ORrmPolicyRatio
}

// AttributeValues carries the values of a configuration structure's
// attributes.
type AttributeValues struct {
	RanConfigStructure *RanConfigurationStructure
}

// ConfigurationStructureWrite is one requested structure change: its name and
// the old and new attribute values.
type ConfigurationStructureWrite struct {
	RanConfigStructureName string
	OldValuesOfAttributes  *AttributeValues
	NewValuesOfAttributes  *AttributeValues
}

// CellControlItem groups the structure changes requested for one cell.
type CellControlItem struct {
	CellGlobalID           *common.Cgi
	ListOfConfigStructures []*ConfigurationStructureWrite
}

// ControlMessageFormat2 is the style-2 cell control request body.
type ControlMessageFormat2 struct {
	ListOfCellsControl []*CellControlItem
}

// ControlMessage is the control-message format choice.
type ControlMessage struct {
	ControlMessageFormat2 *ControlMessageFormat2
}

// ControlHeaderFormat1 carries the RIC style type of a control request.
type ControlHeaderFormat1 struct {
	RicStyleType int32
}

// ControlHeader is the control-header format choice.
type ControlHeader struct {
	ControlHeaderFormat1 *ControlHeaderFormat1
}

// ConfigurationStructureAccepted echoes an applied structure change.
type ConfigurationStructureAccepted struct {
	RanConfigStructureName    string
	OldValuesOfAttributes     *AttributeValues
	CurrentValuesOfAttributes *AttributeValues
	AppliedTimestamp          []byte
}

// ConfigurationStructureFailed reports a rejected structure change.
type ConfigurationStructureFailed struct {
	RanConfigStructureName      string
	OldValuesOfAttributes       *AttributeValues
	RequestedValuesOfAttributes *AttributeValues
	Cause                       Cause
}

// CellControlOutcome carries the per-cell accepted and failed structure lists.
type CellControlOutcome struct {
	CellGlobalID                    *common.Cgi
	RanConfigStructuresAcceptedList []*ConfigurationStructureAccepted
	RanConfigStructuresFailedList   []*ConfigurationStructureFailed
}

// ControlOutcomeFormat2 is the style-2 control outcome body.
type ControlOutcomeFormat2 struct {
	RxTimestamp                  []byte
	ListOfCellsForControlOutcome []*CellControlOutcome
}

// ControlOutcome is the control-outcome format choice.
type ControlOutcome struct {
	ControlOutcomeFormat2 *ControlOutcomeFormat2
}

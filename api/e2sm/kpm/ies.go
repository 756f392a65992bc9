// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package kpm holds the decoded shapes of the E2SM-KPM v3 IEs: the five
// action-definition formats, the event trigger, the indication header and the
// three indication-message formats. The registered model plugin owns the PER
// representation; everything in the engine works on these structs.
package kpm

import "github.com/onosproject/e2-agent/api/e2sm/common"

// MeasurementType names a metric either by measurement name or by a
// vendor-assigned measurement id.
type MeasurementType struct {
	MeasName string
	MeasID   int64
}

// MeasurementLabel is the decoded meas-label IE. NoLabel excludes every other
// field; the remaining fields are optional subcounter qualifiers.
type MeasurementLabel struct {
	NoLabel          bool
	PlmnID           *common.PlmnIdentity
	SliceID          *common.Snssai
	FiveQi           *int32
	QFi              *int32
	QCi              *int32
	QCimax           *int32
	QCimin           *int32
	ARpmax           *int32
	ARpmin           *int32
	BitrateRange     *int32
	LayerMuMimo      *int32
	Sum              bool
	DistBinX         *int32
	DistBinY         *int32
	DistBinZ         *int32
	PreLabelOverride bool
	StartEndInd      *int32
	Min              bool
	Max              bool
	Avg              bool
	SsbIndex         *int32
	NonGoB           *int32
	MimoModeIndex    *int32
}

// LabelInfoItem wraps a measurement label inside a label-info list.
type LabelInfoItem struct {
	MeasLabel *MeasurementLabel
}

// MeasurementInfoItem binds a metric to the labels it is requested with.
type MeasurementInfoItem struct {
	MeasType      MeasurementType
	LabelInfoList []*LabelInfoItem
}

// MatchingCondItem is the matching-condition choice of report style 3:
// either a measurement label or a test condition.
type MatchingCondItem struct {
	MeasLabel    *MeasurementLabel
	TestCondInfo *common.TestCondInfo
}

// MeasurementCondItem is one condition group of an action-definition format 3.
type MeasurementCondItem struct {
	MeasType     MeasurementType
	MatchingCond []*MatchingCondItem
}

// MatchingUeCondPerSubItem is one entry of the matching-UE-condition list of
// an action-definition format 4.
type MatchingUeCondPerSubItem struct {
	TestCondInfo *common.TestCondInfo
}

// UeIDItem wraps a UE id inside the matching-UE-id list of format 5.
type UeIDItem struct {
	UeID *common.UeID
}

// ActionDefinitionFormat1 is the node- or cell-scoped periodic subscription.
type ActionDefinitionFormat1 struct {
	MeasInfoList []*MeasurementInfoItem
	GranulPeriod uint64
	CellGlobalID *common.Cgi
}

// ActionDefinitionFormat2 is a format-1 subscription pinned to a single UE.
type ActionDefinitionFormat2 struct {
	UeID          *common.UeID
	SubscriptInfo *ActionDefinitionFormat1
}

// ActionDefinitionFormat3 subscribes to condition-matching UE measurements.
type ActionDefinitionFormat3 struct {
	MeasCondList []*MeasurementCondItem
	GranulPeriod uint64
	CellGlobalID *common.Cgi
}

// ActionDefinitionFormat4 is a format-1 subscription over the UEs matching a
// list of test conditions.
type ActionDefinitionFormat4 struct {
	MatchingUeCondList []*MatchingUeCondPerSubItem
	SubscriptionInfo   *ActionDefinitionFormat1
}

// ActionDefinitionFormat5 is a format-1 subscription over a fixed UE list.
type ActionDefinitionFormat5 struct {
	MatchingUeIDList []*UeIDItem
	SubscriptionInfo *ActionDefinitionFormat1
}

// ActionDefinition is the decoded E2SM-KPM action definition: a RIC style type
// and the format choice that goes with it.
type ActionDefinition struct {
	RicStyleType            int32
	ActionDefinitionFormat1 *ActionDefinitionFormat1
	ActionDefinitionFormat2 *ActionDefinitionFormat2
	ActionDefinitionFormat3 *ActionDefinitionFormat3
	ActionDefinitionFormat4 *ActionDefinitionFormat4
	ActionDefinitionFormat5 *ActionDefinitionFormat5
}

// EventTriggerDefinition is the decoded event trigger (format 1): the
// reporting period in milliseconds.
type EventTriggerDefinition struct {
	ReportingPeriod uint64
}

// IndicationHeaderFormat1 carries the collection start time (8 octets) and
// the optional sender/vendor strings, all absent by default.
type IndicationHeaderFormat1 struct {
	ColletStartTime   []byte
	FileFormatVersion string
	SenderName        string
	SenderType        string
	VendorName        string
}

// IndicationHeader is the indication-header format choice.
type IndicationHeader struct {
	IndicationHeaderFormat1 *IndicationHeaderFormat1
}

// MeasurementRecordItem is one cell of a measurement row: integer, real or
// the explicit no-value marker.
type MeasurementRecordItem struct {
	Integer *int64
	Real    *float64
	NoValue bool
}

// MeasurementRecord is one row of measurement values.
type MeasurementRecord struct {
	Value []*MeasurementRecordItem
}

// MeasurementDataItem wraps a measurement record together with the incomplete
// flag.
type MeasurementDataItem struct {
	MeasRecord     *MeasurementRecord
	IncompleteFlag bool
}

// MeasurementData is the list of rows collected across granularity periods.
type MeasurementData struct {
	Value []*MeasurementDataItem
}

// MeasurementInfoList is the ordered metric list of an indication message.
type MeasurementInfoList struct {
	Value []*MeasurementInfoItem
}

// IndicationMessageFormat1 is the message shape of report styles 1 and 2.
type IndicationMessageFormat1 struct {
	MeasData     *MeasurementData
	MeasInfoList *MeasurementInfoList
	GranulPeriod *uint64
}

// MatchingUeIDItem is one matched UE inside a style-3 condition group.
type MatchingUeIDItem struct {
	UeID *common.UeID
}

// MeasurementCondUeIDItem is one condition group of an indication message
// format 2, with the monotonically extended list of UEs that matched it.
type MeasurementCondUeIDItem struct {
	MeasType         MeasurementType
	MatchingCond     []*MatchingCondItem
	MatchingUeIDList []*MatchingUeIDItem
}

// IndicationMessageFormat2 is the message shape of report style 3.
type IndicationMessageFormat2 struct {
	MeasData         *MeasurementData
	MeasCondUeIDList []*MeasurementCondUeIDItem
	GranulPeriod     *uint64
}

// UeMeasurementReportItem carries one UE's format-1 report inside a format-3
// message.
type UeMeasurementReportItem struct {
	UeID       *common.UeID
	MeasReport *IndicationMessageFormat1
}

// IndicationMessageFormat3 is the message shape of report styles 4 and 5.
type IndicationMessageFormat3 struct {
	UeMeasReportList []*UeMeasurementReportItem
}

// IndicationMessage is the indication-message format choice.
type IndicationMessage struct {
	IndicationMessageFormat1 *IndicationMessageFormat1
	IndicationMessageFormat2 *IndicationMessageFormat2
	IndicationMessageFormat3 *IndicationMessageFormat3
}

// MeasurementInfoActionItem advertises one metric in the RAN function
// description.
type MeasurementInfoActionItem struct {
	MeasName string
	MeasID   int64
}

// RicReportStyleItem advertises one report style in the RAN function
// description.
type RicReportStyleItem struct {
	RicReportStyleType             int32
	RicReportStyleName             string
	RicActionFormatType            int32
	MeasInfoActionList             []*MeasurementInfoActionItem
	RicIndicationHeaderFormatType  int32
	RicIndicationMessageFormatType int32
}

// RicEventTriggerStyleItem advertises one event trigger style.
type RicEventTriggerStyleItem struct {
	RicEventTriggerStyleType  int32
	RicEventTriggerStyleName  string
	RicEventTriggerFormatType int32
}

// RanFunctionName names the service model instance.
type RanFunctionName struct {
	RanFunctionShortName   string
	RanFunctionE2SmOID     string
	RanFunctionDescription string
	RanFunctionInstance    int32
}

// RanFunctionDescription is the decoded E2SM-KPM RAN function description.
type RanFunctionDescription struct {
	RanFunctionName          RanFunctionName
	RicEventTriggerStyleList []*RicEventTriggerStyleItem
	RicReportStyleList       []*RicReportStyleItem
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package measurements builds the measurement IEs of KPM indication messages.
package measurements

import (
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
)

// NewMeasurementRecordItemInteger creates an integer measurement record item.
func NewMeasurementRecordItemInteger(value int64) *kpmapi.MeasurementRecordItem {
	return &kpmapi.MeasurementRecordItem{Integer: &value}
}

// NewMeasurementRecordItemReal creates a real measurement record item.
func NewMeasurementRecordItemReal(value float64) *kpmapi.MeasurementRecordItem {
	return &kpmapi.MeasurementRecordItem{Real: &value}
}

// NewMeasurementRecordItemNoValue creates a no-value measurement record item.
func NewMeasurementRecordItemNoValue() *kpmapi.MeasurementRecordItem {
	return &kpmapi.MeasurementRecordItem{NoValue: true}
}

// NewMeasurementDataItem wraps a measurement record in a data item.
func NewMeasurementDataItem(record *kpmapi.MeasurementRecord, incomplete bool) *kpmapi.MeasurementDataItem {
	return &kpmapi.MeasurementDataItem{
		MeasRecord:     record,
		IncompleteFlag: incomplete,
	}
}

// NewMeasurementTypeName creates a measurement type naming a metric.
func NewMeasurementTypeName(name string) kpmapi.MeasurementType {
	return kpmapi.MeasurementType{MeasName: name}
}

// NewMeasurementInfoItem binds a measurement type to a label info list.
func NewMeasurementInfoItem(measType kpmapi.MeasurementType, labelInfoList ...*kpmapi.LabelInfoItem) *kpmapi.MeasurementInfoItem {
	return &kpmapi.MeasurementInfoItem{
		MeasType:      measType,
		LabelInfoList: labelInfoList,
	}
}

// NewLabelInfoItemNoLabel creates a NO_LABEL label info entry.
func NewLabelInfoItemNoLabel() *kpmapi.LabelInfoItem {
	return &kpmapi.LabelInfoItem{
		MeasLabel: &kpmapi.MeasurementLabel{NoLabel: true},
	}
}

// NewMeasurementInfoActionItem advertises one metric in a RAN function
// description.
func NewMeasurementInfoActionItem(measName string, measID int64) *kpmapi.MeasurementInfoActionItem {
	return &kpmapi.MeasurementInfoActionItem{
		MeasName: measName,
		MeasID:   measID,
	}
}

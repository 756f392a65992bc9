// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package reportstyle

import (
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
)

// Item is a builder for RIC report style items of a RAN function description.
type Item struct {
	styleType           int32
	styleName           string
	formatType          int32
	measInfoActionList  []*kpmapi.MeasurementInfoActionItem
	indicationHdrFormat int32
	indicationMsgFormat int32
}

// NewReportStyleItem creates a report style item builder with the given options.
func NewReportStyleItem(options ...func(*Item)) *Item {
	item := &Item{}
	for _, option := range options {
		option(item)
	}
	return item
}

// WithRICStyleType sets the RIC style type.
func WithRICStyleType(styleType int32) func(*Item) {
	return func(item *Item) {
		item.styleType = styleType
	}
}

// WithRICStyleName sets the RIC style name.
func WithRICStyleName(styleName string) func(*Item) {
	return func(item *Item) {
		item.styleName = styleName
	}
}

// WithRICFormatType sets the action definition format type.
func WithRICFormatType(formatType int32) func(*Item) {
	return func(item *Item) {
		item.formatType = formatType
	}
}

// WithMeasInfoActionList sets the advertised metric list.
func WithMeasInfoActionList(measInfoActionList []*kpmapi.MeasurementInfoActionItem) func(*Item) {
	return func(item *Item) {
		item.measInfoActionList = measInfoActionList
	}
}

// WithIndicationHdrFormatType sets the indication header format type.
func WithIndicationHdrFormatType(indicationHdrFormat int32) func(*Item) {
	return func(item *Item) {
		item.indicationHdrFormat = indicationHdrFormat
	}
}

// WithIndicationMsgFormatType sets the indication message format type.
func WithIndicationMsgFormatType(indicationMsgFormat int32) func(*Item) {
	return func(item *Item) {
		item.indicationMsgFormat = indicationMsgFormat
	}
}

// Build builds the report style item.
func (item *Item) Build() *kpmapi.RicReportStyleItem {
	return &kpmapi.RicReportStyleItem{
		RicReportStyleType:             item.styleType,
		RicReportStyleName:             item.styleName,
		RicActionFormatType:            item.formatType,
		MeasInfoActionList:             item.measInfoActionList,
		RicIndicationHeaderFormatType:  item.indicationHdrFormat,
		RicIndicationMessageFormatType: item.indicationMsgFormat,
	}
}

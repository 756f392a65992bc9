// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package kpm

import (
	"encoding/binary"
	"time"

	"github.com/onosproject/onos-lib-go/pkg/errors"

	"github.com/onosproject/e2-agent/api/e2sm/common"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics/provider"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
	"github.com/onosproject/e2-agent/pkg/utils/e2sm/kpm/measurements"
)

// reportService is one long-lived report service bound to an admitted
// subscription action. CollectMeasurements appends one row per call, made once
// per reporting-period tick of the subscription; IndicationMessage packs the
// current window and clears it.
type reportService interface {
	// CollectMeasurements appends the next row; false means the tick was
	// skipped because no UE currently matches.
	CollectMeasurements() bool

	// IndMsgReady is true iff the current window holds at least one value
	// that is not no-value. The caller must not emit otherwise.
	IndMsgReady() bool

	// IndicationHeader packs the indication header for this window.
	IndicationHeader() ([]byte, error)

	// IndicationMessage packs the indication message and clears the window.
	IndicationMessage() ([]byte, error)

	// Clear drops the current window and restarts the collection timestamp.
	Clear()
}

// newReportService instantiates the report service for an admitted action
// definition.
func newReportService(actionDef *kpmapi.ActionDefinition, meas provider.MeasProvider,
	codec modelplugins.KpmCodec) (reportService, error) {
	switch actionDef.RicStyleType {
	case 1:
		return newReportServiceStyle1(actionDef.ActionDefinitionFormat1, meas, codec), nil
	case 2:
		return newReportServiceStyle2(actionDef.ActionDefinitionFormat2, meas, codec), nil
	case 3:
		return newReportServiceStyle3(actionDef.ActionDefinitionFormat3, meas, codec), nil
	case 4:
		return newReportServiceStyle4(actionDef.ActionDefinitionFormat4, meas, codec), nil
	case 5:
		return newReportServiceStyle5(actionDef.ActionDefinitionFormat5, meas, codec), nil
	}
	return nil, errors.New(errors.NotSupported, "unknown RIC style type")
}

// reportServiceBase carries the state shared by all report styles: the
// provider, the codec, the indication header and the readiness flag.
type reportServiceBase struct {
	meas         provider.MeasProvider
	codec        modelplugins.KpmCodec
	header       *kpmapi.IndicationHeaderFormat1
	granulPeriod uint64
	cellGlobalID *common.Cgi
	ready        bool
}

func newReportServiceBase(meas provider.MeasProvider, codec modelplugins.KpmCodec) reportServiceBase {
	base := reportServiceBase{
		meas:  meas,
		codec: codec,
		header: &kpmapi.IndicationHeaderFormat1{
			ColletStartTime: make([]byte, 8),
		},
	}
	base.refreshStartTime()
	return base
}

// refreshStartTime stamps the collection start of the next window.
func (b *reportServiceBase) refreshStartTime() {
	binary.BigEndian.PutUint64(b.header.ColletStartTime, uint64(time.Now().Unix()))
}

func (b *reportServiceBase) IndMsgReady() bool {
	return b.ready
}

func (b *reportServiceBase) IndicationHeader() ([]byte, error) {
	return b.codec.IndicationHeaderToASN1(&kpmapi.IndicationHeader{
		IndicationHeaderFormat1: b.header,
	})
}

// initIndMsgFormat1 initializes a format-1 message body for the given metric
// list. The granularity period is left absent on the wire for compatibility
// with deployed RIC implementations.
func (b *reportServiceBase) initIndMsgFormat1(measInfoList []*kpmapi.MeasurementInfoItem) *kpmapi.IndicationMessageFormat1 {
	return &kpmapi.IndicationMessageFormat1{
		MeasData:     &kpmapi.MeasurementData{Value: make([]*kpmapi.MeasurementDataItem, 0)},
		MeasInfoList: &kpmapi.MeasurementInfoList{Value: measInfoList},
	}
}

// recordAt picks the record for one position of a query result, converting a
// missing record into no-value. A query that returns nothing never aborts the
// window.
func recordAt(items []*kpmapi.MeasurementRecordItem, index int) *kpmapi.MeasurementRecordItem {
	if index < len(items) {
		return items[index]
	}
	return measurements.NewMeasurementRecordItemNoValue()
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package kpm

import (
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics/provider"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
	"github.com/onosproject/e2-agent/pkg/utils/e2sm/kpm/measurements"
)

// reportServiceStyle1 builds the node-scoped periodic report: one row per
// tick, one record per subscribed metric, queried with an empty UE list.
type reportServiceStyle1 struct {
	reportServiceBase
	actionDef *kpmapi.ActionDefinitionFormat1
	message   *kpmapi.IndicationMessageFormat1
}

func newReportServiceStyle1(actionDef *kpmapi.ActionDefinitionFormat1, meas provider.MeasProvider,
	codec modelplugins.KpmCodec) *reportServiceStyle1 {
	s := &reportServiceStyle1{
		reportServiceBase: newReportServiceBase(meas, codec),
		actionDef:         actionDef,
	}
	s.granulPeriod = actionDef.GranulPeriod
	s.cellGlobalID = actionDef.CellGlobalID
	s.message = s.initIndMsgFormat1(actionDef.MeasInfoList)
	return s
}

func (s *reportServiceStyle1) CollectMeasurements() bool {
	record := &kpmapi.MeasurementRecord{Value: make([]*kpmapi.MeasurementRecordItem, 0, len(s.actionDef.MeasInfoList))}
	for _, measInfo := range s.message.MeasInfoList.Value {
		items, ok := s.meas.GetMeasData(measInfo.MeasType, measInfo.LabelInfoList, nil, s.cellGlobalID)
		if !ok {
			items = nil
		}
		record.Value = append(record.Value, recordAt(items, 0))
	}
	s.message.MeasData.Value = append(s.message.MeasData.Value, measurements.NewMeasurementDataItem(record, false))
	// The E2 node itself is always present, so every row holds valid values.
	s.ready = true
	return true
}

func (s *reportServiceStyle1) IndicationMessage() ([]byte, error) {
	bytes, err := s.codec.IndicationMessageToASN1(&kpmapi.IndicationMessage{
		IndicationMessageFormat1: s.message,
	})
	s.Clear()
	return bytes, err
}

func (s *reportServiceStyle1) Clear() {
	s.message.MeasData.Value = s.message.MeasData.Value[:0]
	s.refreshStartTime()
	s.ready = false
}

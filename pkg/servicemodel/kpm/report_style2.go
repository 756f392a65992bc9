// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package kpm

import (
	"github.com/onosproject/e2-agent/api/e2sm/common"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics/provider"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
	"github.com/onosproject/e2-agent/pkg/utils/e2sm/kpm/measurements"
)

// reportServiceStyle2 builds the single-UE periodic report. It becomes ready
// only once at least one real value has been collected for the UE.
type reportServiceStyle2 struct {
	reportServiceBase
	ueID    *common.UeID
	subInfo *kpmapi.ActionDefinitionFormat1
	message *kpmapi.IndicationMessageFormat1
}

func newReportServiceStyle2(actionDef *kpmapi.ActionDefinitionFormat2, meas provider.MeasProvider,
	codec modelplugins.KpmCodec) *reportServiceStyle2 {
	s := &reportServiceStyle2{
		reportServiceBase: newReportServiceBase(meas, codec),
		ueID:              actionDef.UeID,
		subInfo:           actionDef.SubscriptInfo,
	}
	s.granulPeriod = actionDef.SubscriptInfo.GranulPeriod
	s.cellGlobalID = actionDef.SubscriptInfo.CellGlobalID
	s.message = s.initIndMsgFormat1(actionDef.SubscriptInfo.MeasInfoList)
	return s
}

func (s *reportServiceStyle2) CollectMeasurements() bool {
	ues := []*common.UeID{s.ueID}
	record := &kpmapi.MeasurementRecord{Value: make([]*kpmapi.MeasurementRecordItem, 0, len(s.subInfo.MeasInfoList))}
	for _, measInfo := range s.message.MeasInfoList.Value {
		items, ok := s.meas.GetMeasData(measInfo.MeasType, measInfo.LabelInfoList, ues, s.cellGlobalID)
		if !ok {
			items = nil
		}
		item := recordAt(items, 0)
		record.Value = append(record.Value, item)
		if !item.NoValue {
			// Ready once filled with at least one valid value.
			s.ready = true
		}
	}
	s.message.MeasData.Value = append(s.message.MeasData.Value, measurements.NewMeasurementDataItem(record, false))
	return true
}

func (s *reportServiceStyle2) IndicationMessage() ([]byte, error) {
	bytes, err := s.codec.IndicationMessageToASN1(&kpmapi.IndicationMessage{
		IndicationMessageFormat1: s.message,
	})
	s.Clear()
	return bytes, err
}

func (s *reportServiceStyle2) Clear() {
	s.message.MeasData.Value = s.message.MeasData.Value[:0]
	s.refreshStartTime()
	s.ready = false
}

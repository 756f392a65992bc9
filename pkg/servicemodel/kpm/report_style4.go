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

// reportServiceStyle4 builds the subscription over condition-matching UEs
// (message format 3). The per-UE report list grows monotonically; a UE that
// starts matching mid-window gets its earlier rows back-filled with no-value
// rows of full metric width.
type reportServiceStyle4 struct {
	reportServiceBase
	actionDef    *kpmapi.ActionDefinitionFormat4
	subInfo      *kpmapi.ActionDefinitionFormat1
	message      *kpmapi.IndicationMessageFormat3
	nofCollected int
}

func newReportServiceStyle4(actionDef *kpmapi.ActionDefinitionFormat4, meas provider.MeasProvider,
	codec modelplugins.KpmCodec) *reportServiceStyle4 {
	s := &reportServiceStyle4{
		reportServiceBase: newReportServiceBase(meas, codec),
		actionDef:         actionDef,
		subInfo:           actionDef.SubscriptionInfo,
	}
	s.granulPeriod = actionDef.SubscriptionInfo.GranulPeriod
	s.cellGlobalID = actionDef.SubscriptionInfo.CellGlobalID
	// No report list up front: each window may see a different UE set.
	s.message = &kpmapi.IndicationMessageFormat3{}
	return s
}

func (s *reportServiceStyle4) CollectMeasurements() bool {
	curMatchingUes := s.meas.MatchingUesPerSub(s.actionDef.MatchingUeCondList)

	nofMetrics := len(s.subInfo.MeasInfoList)
	for _, ue := range curMatchingUes {
		if containsUeReport(s.message.UeMeasReportList, ue) {
			continue
		}
		report := &kpmapi.UeMeasurementReportItem{
			UeID:       ue,
			MeasReport: s.initIndMsgFormat1(s.subInfo.MeasInfoList),
		}
		// Back-fill the rows collected before this UE first matched.
		for i := 0; i < s.nofCollected; i++ {
			record := &kpmapi.MeasurementRecord{Value: make([]*kpmapi.MeasurementRecordItem, 0, nofMetrics)}
			for m := 0; m < nofMetrics; m++ {
				record.Value = append(record.Value, measurements.NewMeasurementRecordItemNoValue())
			}
			report.MeasReport.MeasData.Value = append(report.MeasReport.MeasData.Value,
				measurements.NewMeasurementDataItem(record, false))
		}
		s.message.UeMeasReportList = append(s.message.UeMeasReportList, report)
	}

	if len(s.message.UeMeasReportList) == 0 {
		// Skip the collection as no UE satisfies the condition.
		return false
	}
	// The collected records belong to present UEs, so the indication holds
	// valid values.
	s.ready = true

	allMatchingUes := make([]*common.UeID, 0, len(s.message.UeMeasReportList))
	for _, report := range s.message.UeMeasReportList {
		allMatchingUes = append(allMatchingUes, report.UeID)
	}

	for _, measInfo := range s.subInfo.MeasInfoList {
		items, ok := s.meas.GetMeasData(measInfo.MeasType, measInfo.LabelInfoList, allMatchingUes, s.cellGlobalID)
		if !ok {
			items = nil
		}
		appendUeRecords(s.message.UeMeasReportList, items, s.nofCollected)
	}
	s.nofCollected++
	return true
}

// appendUeRecords splits a per-UE query column into the per-UE reports,
// appending each record to the row with the given index.
func appendUeRecords(reports []*kpmapi.UeMeasurementReportItem, items []*kpmapi.MeasurementRecordItem, row int) {
	for ueIdx, report := range reports {
		item := recordAt(items, ueIdx)
		measData := report.MeasReport.MeasData
		if len(measData.Value) < row+1 {
			record := &kpmapi.MeasurementRecord{Value: []*kpmapi.MeasurementRecordItem{item}}
			measData.Value = append(measData.Value, measurements.NewMeasurementDataItem(record, false))
		} else {
			measData.Value[row].MeasRecord.Value = append(measData.Value[row].MeasRecord.Value, item)
		}
	}
}

func containsUeReport(list []*kpmapi.UeMeasurementReportItem, ue *common.UeID) bool {
	for _, item := range list {
		if item.UeID.Equal(ue) {
			return true
		}
	}
	return false
}

func (s *reportServiceStyle4) IndicationMessage() ([]byte, error) {
	bytes, err := s.codec.IndicationMessageToASN1(&kpmapi.IndicationMessage{
		IndicationMessageFormat3: s.message,
	})
	s.Clear()
	return bytes, err
}

func (s *reportServiceStyle4) Clear() {
	// Drop the whole report list: the next window may contain a different
	// set of UEs.
	s.message.UeMeasReportList = nil
	s.refreshStartTime()
	s.nofCollected = 0
	s.ready = false
}

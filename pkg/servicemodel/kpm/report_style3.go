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

// reportServiceStyle3 builds the condition-matching UE report (message
// format 2). UEs that ever matched a condition group stay in the reported
// list for the lifetime of the window; rows collected before a UE first
// matched are back-filled with no-value so record columns stay aligned.
type reportServiceStyle3 struct {
	reportServiceBase
	actionDef *kpmapi.ActionDefinitionFormat3
	message   *kpmapi.IndicationMessageFormat2
}

func newReportServiceStyle3(actionDef *kpmapi.ActionDefinitionFormat3, meas provider.MeasProvider,
	codec modelplugins.KpmCodec) *reportServiceStyle3 {
	s := &reportServiceStyle3{
		reportServiceBase: newReportServiceBase(meas, codec),
		actionDef:         actionDef,
	}
	s.granulPeriod = actionDef.GranulPeriod
	s.cellGlobalID = actionDef.CellGlobalID
	s.message = &kpmapi.IndicationMessageFormat2{
		MeasData: &kpmapi.MeasurementData{Value: make([]*kpmapi.MeasurementDataItem, 0)},
	}
	for _, measCond := range actionDef.MeasCondList {
		condItem := &kpmapi.MeasurementCondUeIDItem{
			MeasType:     measCond.MeasType,
			MatchingCond: measCond.MatchingCond,
		}
		if len(condItem.MatchingCond) == 0 {
			// At least one condition is needed to pack the message; use
			// NO_LABEL as placeholder.
			condItem.MatchingCond = []*kpmapi.MatchingCondItem{
				{MeasLabel: &kpmapi.MeasurementLabel{NoLabel: true}},
			}
		}
		s.message.MeasCondUeIDList = append(s.message.MeasCondUeIDList, condItem)
	}
	return s
}

func (s *reportServiceStyle3) CollectMeasurements() bool {
	collected := false
	for _, measCond := range s.message.MeasCondUeIDList {
		curMatchingUes := s.meas.MatchingUes(measCond.MatchingCond)

		// Extend the monotonic UE set; back-fill earlier rows for newcomers.
		for _, ue := range curMatchingUes {
			if !containsMatchingUe(measCond.MatchingUeIDList, ue) {
				for _, measData := range s.message.MeasData.Value {
					measData.MeasRecord.Value = append(measData.MeasRecord.Value,
						measurements.NewMeasurementRecordItemNoValue())
				}
				measCond.MatchingUeIDList = append(measCond.MatchingUeIDList,
					&kpmapi.MatchingUeIDItem{UeID: ue})
			}
		}

		if len(measCond.MatchingUeIDList) == 0 {
			// Skip the collection as no UE satisfies the condition.
			continue
		}
		// The collected records belong to present UEs, so the indication
		// holds valid values.
		s.ready = true
		collected = true

		allMatchingUes := make([]*common.UeID, 0, len(measCond.MatchingUeIDList))
		for _, item := range measCond.MatchingUeIDList {
			allMatchingUes = append(allMatchingUes, item.UeID)
		}

		// Derive the label list from the condition list; test-condition
		// variants carry no label.
		labelInfoList := make([]*kpmapi.LabelInfoItem, 0)
		for _, cond := range measCond.MatchingCond {
			if cond.MeasLabel != nil {
				labelInfoList = append(labelInfoList, &kpmapi.LabelInfoItem{MeasLabel: cond.MeasLabel})
			}
		}

		items, ok := s.meas.GetMeasData(measCond.MeasType, labelInfoList, allMatchingUes, s.cellGlobalID)
		if !ok {
			items = nil
		}
		record := &kpmapi.MeasurementRecord{Value: make([]*kpmapi.MeasurementRecordItem, 0, len(allMatchingUes))}
		for i := range allMatchingUes {
			record.Value = append(record.Value, recordAt(items, i))
		}
		s.message.MeasData.Value = append(s.message.MeasData.Value, measurements.NewMeasurementDataItem(record, false))
		// A single condition group is collected per tick; multi-group row
		// composition is not defined by the message format.
		break
	}
	return collected
}

func containsMatchingUe(list []*kpmapi.MatchingUeIDItem, ue *common.UeID) bool {
	for _, item := range list {
		if item.UeID.Equal(ue) {
			return true
		}
	}
	return false
}

func (s *reportServiceStyle3) IndicationMessage() ([]byte, error) {
	bytes, err := s.codec.IndicationMessageToASN1(&kpmapi.IndicationMessage{
		IndicationMessageFormat2: s.message,
	})
	s.Clear()
	return bytes, err
}

func (s *reportServiceStyle3) Clear() {
	s.message.MeasData.Value = s.message.MeasData.Value[:0]
	for _, measCond := range s.message.MeasCondUeIDList {
		measCond.MatchingUeIDList = nil
	}
	s.refreshStartTime()
	s.ready = false
}

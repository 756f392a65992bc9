// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package kpm

import (
	"github.com/onosproject/e2-agent/api/e2sm/common"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics/provider"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
)

// reportServiceStyle5 builds the subscription over a fixed UE list (message
// format 3). The UE list is known at subscription time and never changes;
// UEs whose whole window holds only no-value records are dropped from the
// emitted message.
type reportServiceStyle5 struct {
	reportServiceBase
	actionDef    *kpmapi.ActionDefinitionFormat5
	subInfo      *kpmapi.ActionDefinitionFormat1
	message      *kpmapi.IndicationMessageFormat3
	ueIDs        []*common.UeID
	nofCollected int
}

func newReportServiceStyle5(actionDef *kpmapi.ActionDefinitionFormat5, meas provider.MeasProvider,
	codec modelplugins.KpmCodec) *reportServiceStyle5 {
	s := &reportServiceStyle5{
		reportServiceBase: newReportServiceBase(meas, codec),
		actionDef:         actionDef,
		subInfo:           actionDef.SubscriptionInfo,
		ueIDs:             ueIDsOf(actionDef.MatchingUeIDList),
	}
	s.granulPeriod = actionDef.SubscriptionInfo.GranulPeriod
	s.cellGlobalID = actionDef.SubscriptionInfo.CellGlobalID
	s.message = &kpmapi.IndicationMessageFormat3{}
	for _, ueID := range s.ueIDs {
		s.message.UeMeasReportList = append(s.message.UeMeasReportList, &kpmapi.UeMeasurementReportItem{
			UeID:       ueID,
			MeasReport: s.initIndMsgFormat1(s.subInfo.MeasInfoList),
		})
	}
	return s
}

func (s *reportServiceStyle5) CollectMeasurements() bool {
	for _, measInfo := range s.subInfo.MeasInfoList {
		items, ok := s.meas.GetMeasData(measInfo.MeasType, measInfo.LabelInfoList, s.ueIDs, s.cellGlobalID)
		if !ok {
			items = nil
		}
		if !s.ready {
			// Ready once filled with at least one valid value.
			for _, item := range items {
				if !item.NoValue {
					s.ready = true
					break
				}
			}
		}
		appendUeRecords(s.message.UeMeasReportList, items, s.nofCollected)
	}
	s.nofCollected++
	return true
}

// IndicationMessage packs the window, leaving out UEs that reported only
// no-values, and clears it.
func (s *reportServiceStyle5) IndicationMessage() ([]byte, error) {
	emitted := &kpmapi.IndicationMessageFormat3{}
	for _, report := range s.message.UeMeasReportList {
		if reportHasValue(report) {
			emitted.UeMeasReportList = append(emitted.UeMeasReportList, report)
		}
	}
	bytes, err := s.codec.IndicationMessageToASN1(&kpmapi.IndicationMessage{
		IndicationMessageFormat3: emitted,
	})
	s.Clear()
	return bytes, err
}

func reportHasValue(report *kpmapi.UeMeasurementReportItem) bool {
	for _, measData := range report.MeasReport.MeasData.Value {
		for _, record := range measData.MeasRecord.Value {
			if !record.NoValue {
				return true
			}
		}
	}
	return false
}

func (s *reportServiceStyle5) Clear() {
	// The UE report structure is fixed at subscription time; only the
	// collected rows are dropped.
	for _, report := range s.message.UeMeasReportList {
		report.MeasReport.MeasData.Value = report.MeasReport.MeasData.Value[:0]
	}
	s.refreshStartTime()
	s.nofCollected = 0
	s.ready = false
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package kpm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onosproject/e2-agent/api/e2sm/common"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics"
	"github.com/onosproject/e2-agent/pkg/metrics/provider"
	"github.com/onosproject/e2-agent/pkg/model"
)

func newTestProvider(t *testing.T) *provider.DuProvider {
	agentModel := &model.Model{
		PlmnID: 314628,
		Node:   model.Node{Type: model.NodeTypeDu, Cells: []model.Cell{{NCGI: 84325717505}}},
	}
	duProvider, err := provider.NewDuProvider(agentModel.CellCgis())
	require.NoError(t, err)
	return duProvider
}

// Style 1: three UEs with 3, 1 and 2 DRBs report 10 RLC SDUs of 1000 bytes DL
// and 5 of 1000 bytes UL once per tick, for 5 ticks. Each row carries the
// cumulative node level column sum.
func TestReportServiceStyle1NodeThroughput(t *testing.T) {
	duProvider := newTestProvider(t)
	codec := newTestCodec()

	actionDef := format1Action(100, "DRB.RlcSduTransmittedVolumeDL", "DRB.RlcSduTransmittedVolumeUL")
	service, err := newReportService(actionDef, duProvider, codec)
	require.NoError(t, err)

	ues := []metrics.UeIndex{31, 23, 152}
	drbs := []uint8{3, 1, 2}
	for tick := 1; tick <= 5; tick++ {
		for i, ue := range ues {
			for drb := uint8(0); drb < drbs[i]; drb++ {
				duProvider.ReportRlcMetrics(rlcReport(ue, 10000, 5000))
			}
		}
		assert.True(t, service.CollectMeasurements())
	}
	require.True(t, service.IndMsgReady())

	_, err = service.IndicationMessage()
	require.NoError(t, err)
	message := codec.lastMessage()
	require.NotNil(t, message)
	format1 := message.IndicationMessageFormat1
	require.NotNil(t, format1)
	require.Len(t, format1.MeasData.Value, 5)
	for i, row := range format1.MeasData.Value {
		// Column width equals the metric count.
		require.Len(t, row.MeasRecord.Value, 2)
		tick := int64(i + 1)
		assert.Equal(t, tick*6*10000*8/1000, *row.MeasRecord.Value[0].Integer)
		assert.Equal(t, tick*6*5000*8/1000, *row.MeasRecord.Value[1].Integer)
	}
}

// Style 1: PRB usage over the latest scheduler sample only.
func TestReportServiceStyle1PrbUsage(t *testing.T) {
	duProvider := newTestProvider(t)
	codec := newTestCodec()

	actionDef := format1Action(100, "RRU.PrbUsedDl", "RRU.PrbAvailDl", "RRU.PrbTotDl")
	service, err := newReportService(actionDef, duProvider, codec)
	require.NoError(t, err)

	duProvider.ReportCellMetrics(metrics.SchedulerCellMetrics{
		NofPrbs:    25,
		NofDlSlots: 10,
		NofUlSlots: 10,
		UeMetrics: []metrics.SchedulerUeMetrics{
			{UeIndex: 0, TotPdschPrbsUsed: 43},
			{UeIndex: 1, TotPdschPrbsUsed: 36},
			{UeIndex: 2, TotPdschPrbsUsed: 25},
			{UeIndex: 3, TotPdschPrbsUsed: 25},
		},
	})
	require.True(t, service.CollectMeasurements())
	require.True(t, service.IndMsgReady())

	_, err = service.IndicationMessage()
	require.NoError(t, err)
	format1 := codec.lastMessage().IndicationMessageFormat1
	require.Len(t, format1.MeasData.Value, 1)
	row := format1.MeasData.Value[0].MeasRecord.Value
	require.Len(t, row, 3)
	assert.Equal(t, int64(11), *row[0].Integer)
	assert.Equal(t, int64(14), *row[1].Integer)
	assert.Equal(t, int64(44), *row[2].Integer)
}

// Style 2 is not ready until at least one real value has been observed for
// the subscribed UE.
func TestReportServiceStyle2Readiness(t *testing.T) {
	duProvider := newTestProvider(t)
	codec := newTestCodec()

	actionDef := &kpmapi.ActionDefinition{
		RicStyleType: 2,
		ActionDefinitionFormat2: &kpmapi.ActionDefinitionFormat2{
			UeID:          duUe(31),
			SubscriptInfo: format1Action(100, "DRB.UEThpDl").ActionDefinitionFormat1,
		},
	}
	service, err := newReportService(actionDef, duProvider, codec)
	require.NoError(t, err)

	assert.True(t, service.CollectMeasurements())
	assert.False(t, service.IndMsgReady())

	duProvider.ReportRlcMetrics(rlcReport(31, 10000, 5000))
	assert.True(t, service.CollectMeasurements())
	assert.True(t, service.IndMsgReady())

	_, err = service.IndicationMessage()
	require.NoError(t, err)
	format1 := codec.lastMessage().IndicationMessageFormat1
	require.Len(t, format1.MeasData.Value, 2)
	assert.True(t, format1.MeasData.Value[0].MeasRecord.Value[0].NoValue)
	assert.Equal(t, float64(80), *format1.MeasData.Value[1].MeasRecord.Value[0].Real)
}

// Style 3: the matched UE set extends monotonically and rows collected before
// a UE first matched are back-filled with no-value.
func TestReportServiceStyle3MonotonicUeSet(t *testing.T) {
	duProvider := newTestProvider(t)
	codec := newTestCodec()

	actionDef := &kpmapi.ActionDefinition{
		RicStyleType: 3,
		ActionDefinitionFormat3: &kpmapi.ActionDefinitionFormat3{
			MeasCondList: []*kpmapi.MeasurementCondItem{
				{
					MeasType: kpmapi.MeasurementType{MeasName: "DRB.UEThpDl"},
					MatchingCond: []*kpmapi.MatchingCondItem{
						{TestCondInfo: &common.TestCondInfo{TestType: common.TestCondTypeGBr}},
					},
				},
			},
			GranulPeriod: 100,
		},
	}
	service, err := newReportService(actionDef, duProvider, codec)
	require.NoError(t, err)

	// No UE matches yet: the tick is skipped entirely.
	assert.False(t, service.CollectMeasurements())
	assert.False(t, service.IndMsgReady())

	duProvider.ReportRlcMetrics(rlcReport(1, 10000, 5000))
	assert.True(t, service.CollectMeasurements())

	duProvider.ReportRlcMetrics(rlcReport(2, 10000, 5000))
	assert.True(t, service.CollectMeasurements())
	require.True(t, service.IndMsgReady())

	_, err = service.IndicationMessage()
	require.NoError(t, err)
	format2 := codec.lastMessage().IndicationMessageFormat2
	require.NotNil(t, format2)
	require.Len(t, format2.MeasCondUeIDList, 1)
	require.Len(t, format2.MeasCondUeIDList[0].MatchingUeIDList, 2)
	require.Len(t, format2.MeasData.Value, 2)
	// First row was back-filled for the late UE.
	require.Len(t, format2.MeasData.Value[0].MeasRecord.Value, 2)
	require.Len(t, format2.MeasData.Value[1].MeasRecord.Value, 2)
	assert.True(t, format2.MeasData.Value[0].MeasRecord.Value[1].NoValue)
	assert.False(t, format2.MeasData.Value[1].MeasRecord.Value[1].NoValue)
}

// Style 4: per-UE reports stay row-aligned; a newcomer is back-filled with
// full-width no-value rows.
func TestReportServiceStyle4PerUeAlignment(t *testing.T) {
	duProvider := newTestProvider(t)
	codec := newTestCodec()

	actionDef := &kpmapi.ActionDefinition{
		RicStyleType: 4,
		ActionDefinitionFormat4: &kpmapi.ActionDefinitionFormat4{
			MatchingUeCondList: []*kpmapi.MatchingUeCondPerSubItem{
				{TestCondInfo: &common.TestCondInfo{TestType: common.TestCondTypeGBr}},
			},
			SubscriptionInfo: format1Action(100, "DRB.UEThpDl", "DRB.UEThpUl").ActionDefinitionFormat1,
		},
	}
	service, err := newReportService(actionDef, duProvider, codec)
	require.NoError(t, err)

	assert.False(t, service.CollectMeasurements())

	duProvider.ReportRlcMetrics(rlcReport(1, 10000, 5000))
	assert.True(t, service.CollectMeasurements())
	duProvider.ReportRlcMetrics(rlcReport(2, 10000, 5000))
	assert.True(t, service.CollectMeasurements())
	require.True(t, service.IndMsgReady())

	_, err = service.IndicationMessage()
	require.NoError(t, err)
	format3 := codec.lastMessage().IndicationMessageFormat3
	require.NotNil(t, format3)
	require.Len(t, format3.UeMeasReportList, 2)
	// Every UE's report has the same number of rows, every row the full
	// metric width.
	for _, report := range format3.UeMeasReportList {
		require.Len(t, report.MeasReport.MeasData.Value, 2)
		for _, row := range report.MeasReport.MeasData.Value {
			assert.Len(t, row.MeasRecord.Value, 2)
		}
	}
	// The late UE's first row holds no-values only.
	late := format3.UeMeasReportList[1]
	for _, record := range late.MeasReport.MeasData.Value[0].MeasRecord.Value {
		assert.True(t, record.NoValue)
	}
}

// Style 5, scenario: two UEs with deterministic RLC reports; the emitted
// message carries both UE reports in subscription order with one row per
// tick, DL 80 kbit/s and UL 40 kbit/s.
func TestReportServiceStyle5PerUeThroughput(t *testing.T) {
	duProvider := newTestProvider(t)
	codec := newTestCodec()

	actionDef := &kpmapi.ActionDefinition{
		RicStyleType: 5,
		ActionDefinitionFormat5: &kpmapi.ActionDefinitionFormat5{
			MatchingUeIDList: []*kpmapi.UeIDItem{{UeID: duUe(1)}, {UeID: duUe(2)}},
			SubscriptionInfo: format1Action(100, "DRB.UEThpDl", "DRB.UEThpUl").ActionDefinitionFormat1,
		},
	}
	service, err := newReportService(actionDef, duProvider, codec)
	require.NoError(t, err)

	for tick := 0; tick < 3; tick++ {
		duProvider.ReportRlcMetrics(rlcReport(1, 10000, 5000))
		duProvider.ReportRlcMetrics(rlcReport(2, 10000, 5000))
		assert.True(t, service.CollectMeasurements())
	}
	require.True(t, service.IndMsgReady())

	_, err = service.IndicationMessage()
	require.NoError(t, err)
	format3 := codec.lastMessage().IndicationMessageFormat3
	require.Len(t, format3.UeMeasReportList, 2)
	assert.Equal(t, int64(1), format3.UeMeasReportList[0].UeID.GnbDuUeID.GnbCuUeF1ApID)
	assert.Equal(t, int64(2), format3.UeMeasReportList[1].UeID.GnbDuUeID.GnbCuUeF1ApID)
	for _, report := range format3.UeMeasReportList {
		require.Len(t, report.MeasReport.MeasData.Value, 3)
		for _, row := range report.MeasReport.MeasData.Value {
			require.Len(t, row.MeasRecord.Value, 2)
			assert.Equal(t, float64(80), *row.MeasRecord.Value[0].Real)
			assert.Equal(t, float64(40), *row.MeasRecord.Value[1].Real)
		}
	}
}

// Style 5 suppression: with no history at all the window holds only
// no-values; the service reports not ready and a forced emit clears the
// window without raising.
func TestReportServiceStyle5Suppression(t *testing.T) {
	duProvider := newTestProvider(t)
	codec := newTestCodec()

	actionDef := &kpmapi.ActionDefinition{
		RicStyleType: 5,
		ActionDefinitionFormat5: &kpmapi.ActionDefinitionFormat5{
			MatchingUeIDList: []*kpmapi.UeIDItem{{UeID: duUe(1)}, {UeID: duUe(2)}},
			SubscriptionInfo: format1Action(100, "DRB.UEThpDl").ActionDefinitionFormat1,
		},
	}
	service, err := newReportService(actionDef, duProvider, codec)
	require.NoError(t, err)

	for tick := 0; tick < 3; tick++ {
		assert.True(t, service.CollectMeasurements())
	}
	assert.False(t, service.IndMsgReady())

	// Forced emit: UEs with only no-values are dropped and the window clears.
	_, err = service.IndicationMessage()
	require.NoError(t, err)
	format3 := codec.lastMessage().IndicationMessageFormat3
	assert.Empty(t, format3.UeMeasReportList)
	assert.False(t, service.IndMsgReady())

	// The next window starts empty.
	duProvider.ReportRlcMetrics(rlcReport(1, 10000, 5000))
	assert.True(t, service.CollectMeasurements())
	assert.True(t, service.IndMsgReady())
	_, err = service.IndicationMessage()
	require.NoError(t, err)
	format3 = codec.lastMessage().IndicationMessageFormat3
	require.Len(t, format3.UeMeasReportList, 1)
	require.Len(t, format3.UeMeasReportList[0].MeasReport.MeasData.Value, 1)
}

// Successive collection start times on the same service are non-decreasing.
func TestCollectionStartTimeMonotonic(t *testing.T) {
	duProvider := newTestProvider(t)
	codec := newTestCodec()

	service, err := newReportService(format1Action(100, "DRB.UEThpDl"), duProvider, codec)
	require.NoError(t, err)

	var previous uint64
	for i := 0; i < 3; i++ {
		require.True(t, service.CollectMeasurements())
		headerBytes, err := service.IndicationHeader()
		require.NoError(t, err)
		timestamp := binary.BigEndian.Uint64(headerBytes)
		assert.GreaterOrEqual(t, timestamp, previous)
		previous = timestamp
		_, err = service.IndicationMessage()
		require.NoError(t, err)
	}
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onosproject/e2-agent/api/e2sm/common"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics"
	"github.com/onosproject/e2-agent/pkg/metrics/catalog"
)

func testCgi(nci uint64) *common.Cgi {
	return &common.Cgi{
		NrCgi: &common.NrCgi{
			PlmnID:   &common.PlmnIdentity{Value: []byte{0x00, 0xf1, 0x10}},
			NrCellID: nci,
		},
	}
}

func newTestDuProvider(t *testing.T) *DuProvider {
	p, err := NewDuProvider([]*common.Cgi{testCgi(1)})
	require.NoError(t, err)
	return p
}

func noLabelList() []*kpmapi.LabelInfoItem {
	return []*kpmapi.LabelInfoItem{{MeasLabel: &kpmapi.MeasurementLabel{NoLabel: true}}}
}

func measType(name string) kpmapi.MeasurementType {
	return kpmapi.MeasurementType{MeasName: name}
}

func rlcReport(ue metrics.UeIndex, drb uint8, dlSduBytes uint64, ulSduBytes uint64) metrics.RlcMetrics {
	return metrics.RlcMetrics{
		UeIndex: ue,
		DrbID:   drb,
		TxHigh: metrics.RlcTxHighMetrics{
			NumSdus:     10,
			NumSduBytes: dlSduBytes,
		},
		TxLow: metrics.RlcTxLowMetrics{
			NumPduBytesNoSegmentation: dlSduBytes,
		},
		Rx: metrics.RlcRxMetrics{
			NumSdus:     5,
			NumSduBytes: ulSduBytes,
			NumPduBytes: ulSduBytes,
		},
		MetricsPeriod: time.Second,
	}
}

func duUe(index int64) *common.UeID {
	return &common.UeID{GnbDuUeID: &common.UeIDGnbDu{GnbCuUeF1ApID: index}}
}

// Three UEs with 3, 1 and 2 DRBs each report 10 SDUs of 1000 bytes DL and
// 5 of 1000 bytes UL once per tick. The node level volume is the cumulative
// sum over all UEs and the whole history window.
func TestNodeLevelRlcSduVolume(t *testing.T) {
	p := newTestDuProvider(t)
	ues := []metrics.UeIndex{31, 23, 152}
	drbs := []uint8{3, 1, 2}

	for tick := 1; tick <= 5; tick++ {
		for i, ue := range ues {
			for drb := uint8(0); drb < drbs[i]; drb++ {
				p.ReportRlcMetrics(rlcReport(ue, drb, 10000, 5000))
			}
		}

		items, ok := p.GetMeasData(measType("DRB.RlcSduTransmittedVolumeDL"), noLabelList(), nil, nil)
		require.True(t, ok)
		require.Len(t, items, 1)
		assert.Equal(t, int64(tick)*6*10000*8/1000, *items[0].Integer)

		items, ok = p.GetMeasData(measType("DRB.RlcSduTransmittedVolumeUL"), noLabelList(), nil, nil)
		require.True(t, ok)
		require.Len(t, items, 1)
		assert.Equal(t, int64(tick)*6*5000*8/1000, *items[0].Integer)
	}
}

// The per-UE volume is cumulative per UE: tick i times 10000 bytes times the
// number of DRBs, in kbit.
func TestUeLevelRlcSduVolume(t *testing.T) {
	p := newTestDuProvider(t)

	for tick := 1; tick <= 3; tick++ {
		for drb := uint8(0); drb < 3; drb++ {
			p.ReportRlcMetrics(rlcReport(31, drb, 10000, 5000))
		}
		items, ok := p.GetMeasData(measType("DRB.RlcSduTransmittedVolumeDL"), noLabelList(),
			[]*common.UeID{duUe(31), duUe(99)}, nil)
		require.True(t, ok)
		require.Len(t, items, 2)
		assert.Equal(t, int64(tick)*3*10000*8/1000, *items[0].Integer)
		assert.True(t, items[1].NoValue)
	}
}

// Cell with 25 PRBs and 10 DL slots; per-UE PDSCH totals 43, 36, 25 and 25.
// Used PRBs sum the truncated per-UE means, available is the remainder and
// the percentage is truncated.
func TestPrbUsage(t *testing.T) {
	p := newTestDuProvider(t)
	p.ReportCellMetrics(metrics.SchedulerCellMetrics{
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

	items, ok := p.GetMeasData(measType("RRU.PrbUsedDl"), noLabelList(), nil, nil)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, int64(11), *items[0].Integer)

	items, ok = p.GetMeasData(measType("RRU.PrbAvailDl"), noLabelList(), nil, nil)
	require.True(t, ok)
	assert.Equal(t, int64(14), *items[0].Integer)

	items, ok = p.GetMeasData(measType("RRU.PrbTotDl"), noLabelList(), nil, nil)
	require.True(t, ok)
	assert.Equal(t, int64(44), *items[0].Integer)
}

func TestUeThroughput(t *testing.T) {
	p := newTestDuProvider(t)
	for tick := 0; tick < 3; tick++ {
		p.ReportRlcMetrics(rlcReport(1, 0, 10000, 5000))
		p.ReportRlcMetrics(rlcReport(2, 0, 10000, 5000))
	}

	items, ok := p.GetMeasData(measType("DRB.UEThpDl"), noLabelList(),
		[]*common.UeID{duUe(1), duUe(2)}, nil)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, float64(80), *items[0].Real)
	assert.Equal(t, float64(80), *items[1].Real)

	items, ok = p.GetMeasData(measType("DRB.UEThpUl"), noLabelList(),
		[]*common.UeID{duUe(1), duUe(2)}, nil)
	require.True(t, ok)
	assert.Equal(t, float64(40), *items[0].Real)
	assert.Equal(t, float64(40), *items[1].Real)

	// Node level is the sum of the per-UE means.
	items, ok = p.GetMeasData(measType("DRB.UEThpDl"), noLabelList(), nil, nil)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, float64(160), *items[0].Real)
}

// The drop rate is a global ratio over all UEs and samples, scaled by 100,
// not the mean of per-UE ratios.
func TestRlcPacketDropRate(t *testing.T) {
	p := newTestDuProvider(t)
	report := rlcReport(1, 0, 10000, 5000)
	report.TxHigh.NumDroppedSdus = 5
	p.ReportRlcMetrics(report)
	p.ReportRlcMetrics(rlcReport(2, 0, 10000, 5000))

	items, ok := p.GetMeasData(measType("DRB.RlcPacketDropRateDl"), noLabelList(), nil, nil)
	require.True(t, ok)
	require.Len(t, items, 1)
	// 5 dropped of 20 SDUs -> 0.25 * 100.
	assert.Equal(t, int64(25), *items[0].Integer)
}

// With no sample ingested the node scope yields a typed zero and the UE scope
// yields one no-value record per requested UE.
func TestNoDataPolicy(t *testing.T) {
	p := newTestDuProvider(t)

	items, ok := p.GetMeasData(measType("DRB.RlcSduTransmittedVolumeDL"), noLabelList(), nil, nil)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, int64(0), *items[0].Integer)

	items, ok = p.GetMeasData(measType("DRB.UEThpDl"), noLabelList(), nil, nil)
	require.True(t, ok)
	assert.Equal(t, float64(0), *items[0].Real)

	items, ok = p.GetMeasData(measType("DRB.UEThpDl"), noLabelList(),
		[]*common.UeID{duUe(1), duUe(2)}, nil)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.True(t, items[0].NoValue)
	assert.True(t, items[1].NoValue)
}

// Any label other than NO_LABEL is rejected with an empty result.
func TestLabelRejection(t *testing.T) {
	p := newTestDuProvider(t)
	p.ReportRlcMetrics(rlcReport(1, 0, 10000, 5000))

	sum := []*kpmapi.LabelInfoItem{{MeasLabel: &kpmapi.MeasurementLabel{Sum: true}}}
	items, ok := p.GetMeasData(measType("DRB.RlcSduTransmittedVolumeDL"), sum, nil, nil)
	assert.False(t, ok)
	assert.Empty(t, items)
}

func TestHistoryBound(t *testing.T) {
	p, err := NewDuProvider([]*common.Cgi{testCgi(1)}, WithRlcHistoryDepth(4))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		p.ReportRlcMetrics(rlcReport(7, 0, 1000, 1000))
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	assert.Len(t, p.ueRlcMetrics[7], 4)
}

func TestSupportChecks(t *testing.T) {
	p := newTestDuProvider(t)
	p.ReportRlcMetrics(rlcReport(31, 0, 1000, 1000))

	assert.True(t, p.IsUeSupported(duUe(31)))
	assert.False(t, p.IsUeSupported(duUe(99999)))
	assert.True(t, p.IsCellSupported(testCgi(1)))
	assert.False(t, p.IsCellSupported(testCgi(2)))
	assert.True(t, p.IsTestCondSupported(common.TestCondTypeGBr))
	assert.False(t, p.IsTestCondSupported(common.TestCondTypeIsCatM))

	noLabel := &kpmapi.MeasurementLabel{NoLabel: true}
	assert.True(t, p.IsMetricSupported(measType("DRB.UEThpDl"), noLabel, catalog.UEScope, false))
	assert.True(t, p.IsMetricSupported(measType("RACH.PreambleDedCell"), noLabel, catalog.NodeScope, true))
	assert.False(t, p.IsMetricSupported(measType("RACH.PreambleDedCell"), noLabel, catalog.UEScope, false))
	assert.False(t, p.IsMetricSupported(measType("DRB.UEThpDl"), &kpmapi.MeasurementLabel{Sum: true}, catalog.UEScope, false))
	assert.False(t, p.IsMetricSupported(measType("X.Unknown"), noLabel, catalog.NodeScope, false))
}

func TestMatchingUes(t *testing.T) {
	p := newTestDuProvider(t)
	p.ReportRlcMetrics(rlcReport(5, 0, 1000, 1000))
	p.ReportRlcMetrics(rlcReport(3, 0, 1000, 1000))

	// A condition the DU has no observation for matches every known UE,
	// in ascending index order.
	matched := p.MatchingUesPerSub([]*kpmapi.MatchingUeCondPerSubItem{
		{TestCondInfo: &common.TestCondInfo{TestType: common.TestCondTypeGBr}},
	})
	require.Len(t, matched, 2)
	assert.Equal(t, int64(3), matched[0].GnbDuUeID.GnbCuUeF1ApID)
	assert.Equal(t, int64(5), matched[1].GnbDuUeID.GnbCuUeF1ApID)

	// A CQI threshold narrows the set against the latest scheduler sample.
	p.ReportCellMetrics(metrics.SchedulerCellMetrics{
		NofPrbs:    25,
		NofDlSlots: 10,
		UeMetrics: []metrics.SchedulerUeMetrics{
			{UeIndex: 3, CQI: 12},
			{UeIndex: 5, CQI: 4},
		},
	})
	greaterThan := common.TestCondExpressionGreaterThan
	threshold := int64(10)
	matched = p.MatchingUes([]*kpmapi.MatchingCondItem{
		{TestCondInfo: &common.TestCondInfo{
			TestType:  common.TestCondTypeCQi,
			TestExpr:  &greaterThan,
			TestValue: &common.TestCondValue{ValueInt: &threshold},
		}},
	})
	require.Len(t, matched, 1)
	assert.Equal(t, int64(3), matched[0].GnbDuUeID.GnbCuUeF1ApID)
}

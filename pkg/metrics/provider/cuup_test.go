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
	"github.com/onosproject/e2-agent/pkg/metrics"
)

func pdcpReport(ue metrics.UeIndex, dlSduBytes uint64, ulSduBytes uint64) metrics.PdcpMetrics {
	return metrics.PdcpMetrics{
		UeIndex: ue,
		Tx: metrics.PdcpTxMetrics{
			NumSdus:     10,
			NumSduBytes: dlSduBytes,
		},
		Rx: metrics.PdcpRxMetrics{
			NumSdus:     5,
			NumSduBytes: ulSduBytes,
			NumPdus:     10,
		},
		MetricsPeriod: time.Second,
	}
}

func cuUpUe(index int64) *common.UeID {
	return &common.UeID{GnbCuUpUeID: &common.UeIDGnbCuUp{GnbCuCpUeE1ApID: index}}
}

func TestPdcpSduVolume(t *testing.T) {
	p, err := NewCuUpProvider()
	require.NoError(t, err)
	p.ReportPdcpMetrics(pdcpReport(1, 10000, 5000))
	p.ReportPdcpMetrics(pdcpReport(2, 10000, 5000))

	items, ok := p.GetMeasData(measType("DRB.PdcpSduVolumeDL"), noLabelList(), nil, nil)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, int64(160), *items[0].Integer)

	items, ok = p.GetMeasData(measType("DRB.PdcpSduVolumeUL"), noLabelList(),
		[]*common.UeID{cuUpUe(1), cuUpUe(3)}, nil)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, int64(40), *items[0].Integer)
	assert.True(t, items[1].NoValue)
}

func TestPacketSuccessRate(t *testing.T) {
	p, err := NewCuUpProvider()
	require.NoError(t, err)
	report := pdcpReport(1, 10000, 5000)
	report.Rx.NumDroppedPdus = 2
	p.ReportPdcpMetrics(report)
	p.ReportPdcpMetrics(pdcpReport(2, 10000, 5000))

	items, ok := p.GetMeasData(measType("DRB.PacketSuccessRateUlgNBUu"), noLabelList(), nil, nil)
	require.True(t, ok)
	require.Len(t, items, 1)
	// 18 delivered of 20 PDUs -> 0.9 * 100.
	assert.Equal(t, int64(90), *items[0].Integer)
}

func TestPdcpHistoryBound(t *testing.T) {
	p, err := NewCuUpProvider(WithPdcpHistoryDepth(3))
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		p.ReportPdcpMetrics(pdcpReport(4, 1000, 1000))
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	assert.Len(t, p.uePdcpMetrics[4], 3)
}

func TestPdcpNoData(t *testing.T) {
	p, err := NewCuUpProvider()
	require.NoError(t, err)

	items, ok := p.GetMeasData(measType("DRB.PdcpReordDelayUl"), noLabelList(), nil, nil)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.True(t, items[0].NoValue)

	assert.False(t, p.IsUeSupported(cuUpUe(1)))
	p.ReportPdcpMetrics(pdcpReport(1, 1000, 1000))
	assert.True(t, p.IsUeSupported(cuUpUe(1)))
}

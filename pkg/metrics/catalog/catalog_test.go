// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
)

func TestLookup(t *testing.T) {
	metric, ok := Lookup("DRB.UEThpDl")
	require.True(t, ok)
	assert.Equal(t, Real, metric.DataType)
	assert.Equal(t, "kbps", metric.Units)
	assert.Equal(t, AllScopes, metric.OptionalScopes)
	assert.True(t, metric.OptionalLabels&NoLabel != 0)

	_, ok = Lookup("No.SuchMetric")
	assert.False(t, ok)
}

func TestCatalogMergesBothOrigins(t *testing.T) {
	// The catalog is the union of the 3GPP table and the O-RAN additions.
	assert.Equal(t, len(metrics28552)+len(metricsOran), Len())
	assert.Len(t, Metrics(), Len())

	_, ok := Lookup("DRB.RlcSduTransmittedVolumeDL")
	assert.True(t, ok)
	_, ok = Lookup("DRB.AirIfDelayDl")
	assert.True(t, ok)
}

func TestCellScopeRequired(t *testing.T) {
	prb, ok := Lookup("RRU.PrbUsedDl")
	require.True(t, ok)
	assert.True(t, prb.CellScopeRequired())

	pdcp, ok := Lookup("DRB.PdcpReordDelayUl")
	require.True(t, ok)
	assert.False(t, pdcp.CellScopeRequired())
}

func TestLabelMask(t *testing.T) {
	assert.Equal(t, NoLabel, LabelMask(&kpmapi.MeasurementLabel{NoLabel: true}))
	assert.Equal(t, SumLabel, LabelMask(&kpmapi.MeasurementLabel{Sum: true}))
	fiveQi := int32(9)
	assert.Equal(t, FiveQiLabel, LabelMask(&kpmapi.MeasurementLabel{FiveQi: &fiveQi}))
	assert.Equal(t, UnknownLabel, LabelMask(&kpmapi.MeasurementLabel{}))
	assert.Equal(t, UnknownLabel, LabelMask(nil))
}

func TestMaskSubsets(t *testing.T) {
	assert.Equal(t, Label(0), AllValueTypeLabels&^AllLabels)
	assert.Equal(t, AllScopes, NodeScope|UEScope|QosFlowScope)
}

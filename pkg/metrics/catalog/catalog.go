// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package catalog is the static registry of E2SM-KPM metric definitions. The
// catalog is assembled once at package init from the 3GPP TS 28.552 table and
// the O-RAN additions; it is read-only afterwards.
package catalog

import (
	"github.com/onosproject/e2-agent/api/e2sm/kpm"
)

// Label is the bitmask of measurement labels.
type Label uint32

const (
	NoLabel Label = 1 << iota
	PlmnIDLabel
	SliceIDLabel
	FiveQiLabel
	QfiLabel
	QciLabel
	QciMaxLabel
	QciMinLabel
	ArpMaxLabel
	ArpMinLabel
	BitrateRangeLabel
	LayerMuMimoLabel
	SumLabel
	DistBinXLabel
	DistBinYLabel
	DistBinZLabel
	PreLabelOverrideLabel
	StartEndIndLabel
	MinLabel
	MaxLabel
	AvgLabel
	SsbIndexLabel
	NonGoBBfModeIndexLabel
	MimoModeIndexLabel

	AllValueTypeLabels Label = SumLabel | MinLabel | MaxLabel | AvgLabel
	AllSubcounterLabels Label = 0x00e3effe
	AllLabels           Label = 0x00ffffff
	UnknownLabel        Label = 0x10000000
)

// Scope is the bitmask of aggregation levels a metric can be measured at.
type Scope uint32

const (
	NodeScope Scope = 1 << iota
	UEScope
	QosFlowScope

	AllScopes    Scope = NodeScope | UEScope | QosFlowScope
	UnknownScope Scope = 0x10
)

// ObjectClass is the bitmask of measurement-object classes a metric belongs to.
type ObjectClass uint32

const (
	E2Node ObjectClass = 1 << iota // ManagedElement
	GnbCuUp
	NrCellCu
	NrCellDu
	NrCellRelation
	EutranRelation
	Beam
	EpF1U
	EpXnU
	EpX2U

	AnyObject ObjectClass = 0xffff
)

// CollectionMethod enumerates how a metric value is obtained.
type CollectionMethod int

const (
	CumulativeCounter CollectionMethod = iota
	StatusInspection
	DerivedEvent
	Gauge
)

// DataType enumerates the record value type of a metric.
type DataType int

const (
	Integer DataType = iota
	Real
)

// Metric is one immutable catalog entry.
type Metric struct {
	Name           string
	ObjectClass    ObjectClass
	Method         CollectionMethod
	DataType       DataType
	Units          string
	OptionalLabels Label
	OptionalScopes Scope
}

// CellScopeRequired reports whether the metric needs a cell global id: true
// iff its measurement-object class is confined to a single cell.
func (m *Metric) CellScopeRequired() bool {
	return m.ObjectClass == NrCellDu || m.ObjectClass == NrCellCu
}

var catalog map[string]*Metric

func init() {
	catalog = make(map[string]*Metric, len(metrics28552)+len(metricsOran))
	for i := range metrics28552 {
		catalog[metrics28552[i].Name] = &metrics28552[i]
	}
	for i := range metricsOran {
		catalog[metricsOran[i].Name] = &metricsOran[i]
	}
}

// Lookup returns the metric definition for the given name.
func Lookup(name string) (*Metric, bool) {
	m, ok := catalog[name]
	return m, ok
}

// Metrics returns the full descriptor set.
func Metrics() []*Metric {
	all := make([]*Metric, 0, len(catalog))
	for _, m := range catalog {
		all = append(all, m)
	}
	return all
}

// Len returns the number of catalog entries.
func Len() int {
	return len(catalog)
}

// LabelMask folds a decoded measurement label into its bitmask value. A label
// with no recognized field set maps to UnknownLabel.
func LabelMask(label *kpm.MeasurementLabel) Label {
	if label == nil {
		return UnknownLabel
	}
	switch {
	case label.NoLabel:
		return NoLabel
	case label.Sum:
		return SumLabel
	case label.Min:
		return MinLabel
	case label.Max:
		return MaxLabel
	case label.Avg:
		return AvgLabel
	case label.PlmnID != nil:
		return PlmnIDLabel
	case label.SliceID != nil:
		return SliceIDLabel
	case label.FiveQi != nil:
		return FiveQiLabel
	case label.QFi != nil:
		return QfiLabel
	case label.QCi != nil:
		return QciLabel
	case label.QCimax != nil:
		return QciMaxLabel
	case label.QCimin != nil:
		return QciMinLabel
	case label.ARpmax != nil:
		return ArpMaxLabel
	case label.ARpmin != nil:
		return ArpMinLabel
	case label.BitrateRange != nil:
		return BitrateRangeLabel
	case label.LayerMuMimo != nil:
		return LayerMuMimoLabel
	case label.DistBinX != nil:
		return DistBinXLabel
	case label.DistBinY != nil:
		return DistBinYLabel
	case label.DistBinZ != nil:
		return DistBinZLabel
	case label.PreLabelOverride:
		return PreLabelOverrideLabel
	case label.StartEndInd != nil:
		return StartEndIndLabel
	case label.SsbIndex != nil:
		return SsbIndexLabel
	case label.NonGoB != nil:
		return NonGoBBfModeIndexLabel
	case label.MimoModeIndex != nil:
		return MimoModeIndexLabel
	}
	return UnknownLabel
}

func (l Label) String() string {
	switch l {
	case NoLabel:
		return "NO_LABEL"
	case PlmnIDLabel:
		return "PLMN_ID_LABEL"
	case SliceIDLabel:
		return "SLICE_ID_LABEL"
	case FiveQiLabel:
		return "FIVE_QI_LABEL"
	case QfiLabel:
		return "QFI_LABEL"
	case QciLabel:
		return "QCI_LABEL"
	case SumLabel:
		return "SUM_LABEL"
	case MinLabel:
		return "MIN_LABEL"
	case MaxLabel:
		return "MAX_LABEL"
	case AvgLabel:
		return "AVG_LABEL"
	default:
		return "UNKNOWN_LABEL"
	}
}

func (s Scope) String() string {
	switch s {
	case NodeScope:
		return "E2_NODE_LEVEL"
	case UEScope:
		return "UE_LEVEL"
	case QosFlowScope:
		return "QOS_FLOW_LEVEL"
	case AllScopes:
		return "ALL_LEVELS"
	default:
		return "UNKNOWN_LEVEL"
	}
}

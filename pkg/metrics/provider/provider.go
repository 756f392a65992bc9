// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package provider implements the E2SM-KPM measurement providers: the sinks
// for streaming RAN metrics and the typed query surface the report services
// collect from. The DU flavor aggregates scheduler and RLC metrics, the CU-UP
// flavor aggregates PDCP metrics; both register disjoint metric-name to
// getter tables validated against the catalog at construction time.
package provider

import (
	"sort"

	"github.com/onosproject/onos-lib-go/pkg/logging"

	"github.com/onosproject/e2-agent/api/e2sm/common"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics"
	"github.com/onosproject/e2-agent/pkg/metrics/catalog"
)

var log = logging.GetLogger("metrics", "provider")

// MeasProvider answers the measurement queries of the KPM service model.
// Intake is on the concrete provider types; report services and admission
// only see this contract.
type MeasProvider interface {
	// SupportedMetricNames lists the metric names measurable at the given scope.
	SupportedMetricNames(scope catalog.Scope) []string

	// IsCellSupported reports whether the cell with the given global id is served.
	IsCellSupported(cgi *common.Cgi) bool

	// IsUeSupported reports whether the UE with the given id is known.
	IsUeSupported(ueID *common.UeID) bool

	// IsTestCondSupported reports whether a test-condition type can be evaluated.
	IsTestCondSupported(condType common.TestCondType) bool

	// IsMetricSupported reports whether a metric can be measured with the given
	// label at the given scope, optionally confined to a single cell.
	IsMetricSupported(measType kpmapi.MeasurementType, label *kpmapi.MeasurementLabel, scope catalog.Scope, cellScope bool) bool

	// MatchingUes returns the UE ids currently satisfying a style-3 matching
	// condition list.
	MatchingUes(matchingCondList []*kpmapi.MatchingCondItem) []*common.UeID

	// MatchingUesPerSub returns the UE ids currently satisfying a style-4
	// matching-UE condition list.
	MatchingUesPerSub(matchingUeCondList []*kpmapi.MatchingUeCondPerSubItem) []*common.UeID

	// GetMeasData collects the measurement records for one metric. With an
	// empty UE list a single node-level record is returned; otherwise one
	// record per UE, in UE-list order, with no-value records for UEs without
	// history.
	GetMeasData(measType kpmapi.MeasurementType, labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID, cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool)
}

// getterFunc collects the records of a single supported metric.
type getterFunc func(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID, cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool)

// supportedMetric binds a metric name to its supported labels, scopes, cell
// scope flag and getter.
type supportedMetric struct {
	labels    catalog.Label
	scopes    catalog.Scope
	cellScope bool
	getter    getterFunc
}

func integerItem(value int64) *kpmapi.MeasurementRecordItem {
	return &kpmapi.MeasurementRecordItem{Integer: &value}
}

func realItem(value float64) *kpmapi.MeasurementRecordItem {
	return &kpmapi.MeasurementRecordItem{Real: &value}
}

func noValueItem() *kpmapi.MeasurementRecordItem {
	return &kpmapi.MeasurementRecordItem{NoValue: true}
}

// noDataItems builds the records returned when no sample has been ingested
// yet: a single zero/no-value sentinel at node scope, a no-value record per
// UE otherwise.
func noDataItems(ues []*common.UeID, dataType catalog.DataType, noValue bool) []*kpmapi.MeasurementRecordItem {
	if len(ues) == 0 {
		if noValue {
			return []*kpmapi.MeasurementRecordItem{noValueItem()}
		}
		if dataType == catalog.Real {
			return []*kpmapi.MeasurementRecordItem{realItem(0)}
		}
		return []*kpmapi.MeasurementRecordItem{integerItem(0)}
	}
	items := make([]*kpmapi.MeasurementRecordItem, 0, len(ues))
	for range ues {
		items = append(items, noValueItem())
	}
	return items
}

// labelListAccepted reports whether a query label list is servable: the
// current providers accept only NO_LABEL.
func labelListAccepted(labelInfoList []*kpmapi.LabelInfoItem) bool {
	if len(labelInfoList) == 0 {
		return true
	}
	return len(labelInfoList) == 1 && labelInfoList[0].MeasLabel != nil && labelInfoList[0].MeasLabel.NoLabel
}

// ueIndex maps a UE id to the node-local UE index.
func ueIndex(ueID *common.UeID) (metrics.UeIndex, bool) {
	switch {
	case ueID == nil:
		return 0, false
	case ueID.GnbDuUeID != nil:
		return metrics.UeIndex(ueID.GnbDuUeID.GnbCuUeF1ApID), true
	case ueID.GnbCuUpUeID != nil:
		return metrics.UeIndex(ueID.GnbCuUpUeID.GnbCuCpUeE1ApID), true
	case ueID.GnbUeID != nil:
		return metrics.UeIndex(ueID.GnbUeID.AmfUeNgapID), true
	}
	return 0, false
}

func sortedUeIndexes(indexes map[metrics.UeIndex]bool) []metrics.UeIndex {
	sorted := make([]metrics.UeIndex, 0, len(indexes))
	for index := range indexes {
		sorted = append(sorted, index)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// checkMetricDefinitions cross-checks a supported-metric table against the
// catalog. A mismatch is a configuration defect: it is logged and reported so
// initialization can refuse to start.
func checkMetricDefinitions(supported map[string]supportedMetric) bool {
	consistent := true
	for name, metric := range supported {
		def, ok := catalog.Lookup(name)
		if !ok {
			continue
		}
		if metric.labels&^(def.OptionalLabels|catalog.NoLabel) != 0 {
			log.Errorf("Wrong definition of the supported metric %s: labels cannot be supported", name)
			consistent = false
		}
		if metric.scopes != catalog.UnknownScope && metric.scopes&^def.OptionalScopes != 0 {
			log.Errorf("Wrong definition of the supported metric %s: scope cannot be supported", name)
			consistent = false
		}
		if def.CellScopeRequired() && !metric.cellScope {
			log.Errorf("Wrong definition of the supported metric %s: cell scope has to be supported", name)
			consistent = false
		}
	}
	return consistent
}

// supportedNames lists the names measurable at the given scope from a
// supported-metric table.
func supportedNames(supported map[string]supportedMetric, scope catalog.Scope) []string {
	names := make([]string, 0, len(supported))
	for name, metric := range supported {
		if scope&catalog.NodeScope != 0 && metric.scopes&catalog.NodeScope != 0 {
			names = append(names, name)
		} else if scope&catalog.UEScope != 0 && metric.scopes&catalog.UEScope != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// metricSupported implements the common admission check over a
// supported-metric table.
func metricSupported(supported map[string]supportedMetric, measType kpmapi.MeasurementType,
	label *kpmapi.MeasurementLabel, scope catalog.Scope, cellScope bool) bool {
	if catalog.LabelMask(label) != catalog.NoLabel {
		log.Debug("Currently only NO_LABEL metric supported")
		return false
	}
	metric, ok := supported[measType.MeasName]
	if !ok {
		return false
	}
	if metric.scopes&scope != scope {
		return false
	}
	if cellScope && !metric.cellScope {
		return false
	}
	return true
}

func bytesToKbits(value float64) float64 {
	const nofBitsPerByte = 8
	return nofBitsPerByte * value / 1e3
}

func compareInt(expr common.TestCondExpression, value int64, ref int64) bool {
	switch expr {
	case common.TestCondExpressionEqual:
		return value == ref
	case common.TestCondExpressionGreaterThan:
		return value > ref
	case common.TestCondExpressionLessThan:
		return value < ref
	case common.TestCondExpressionContains, common.TestCondExpressionPresent:
		return true
	}
	return false
}

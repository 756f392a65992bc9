// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"math"
	"sync"

	"github.com/onosproject/onos-lib-go/pkg/errors"

	"github.com/onosproject/e2-agent/api/e2sm/common"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics"
	"github.com/onosproject/e2-agent/pkg/metrics/catalog"
)

// DefaultRlcHistoryDepth bounds the per-UE RLC history of the DU provider.
const DefaultRlcHistoryDepth = 30

// DuProvider aggregates scheduler and RLC metrics on a gNB-DU and serves the
// KPM measurement queries over them.
type DuProvider struct {
	mu           sync.RWMutex
	supported    map[string]supportedMetric
	cells        []*common.Cgi
	historyDepth int

	// Latest scheduler snapshot; replaced on every report.
	nofCellPrbs         uint32
	nofDlSlots          uint32
	nofUlSlots          uint32
	nofDedCellPreambles uint32
	lastUeMetrics       []metrics.SchedulerUeMetrics

	// Bounded per-UE RLC history; oldest entry evicted beyond historyDepth.
	ueRlcMetrics map[metrics.UeIndex][]metrics.RlcMetrics
}

// DuProviderOption tailors a DU provider.
type DuProviderOption func(*DuProvider)

// WithRlcHistoryDepth overrides the per-UE RLC history bound.
func WithRlcHistoryDepth(depth int) DuProviderOption {
	return func(p *DuProvider) {
		p.historyDepth = depth
	}
}

// NewDuProvider creates a DU measurement provider serving the given cells.
// The supported-metric table is cross-checked against the catalog; an
// inconsistent table is a configuration defect and fails construction.
func NewDuProvider(cells []*common.Cgi, opts ...DuProviderOption) (*DuProvider, error) {
	p := &DuProvider{
		cells:        cells,
		historyDepth: DefaultRlcHistoryDepth,
		ueRlcMetrics: make(map[metrics.UeIndex][]metrics.RlcMetrics),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.supported = map[string]supportedMetric{
		"CQI":  {labels: catalog.NoLabel, scopes: catalog.UnknownScope, cellScope: false, getter: p.getCqi},
		"RSRP": {labels: catalog.NoLabel, scopes: catalog.UnknownScope, cellScope: false, getter: p.getRsrp},
		"RSRQ": {labels: catalog.NoLabel, scopes: catalog.UnknownScope, cellScope: false, getter: p.getRsrq},
		"RRU.PrbAvailDl": {labels: catalog.NoLabel, scopes: catalog.NodeScope | catalog.UEScope,
			cellScope: true, getter: p.getPrbAvailDl},
		"RRU.PrbAvailUl": {labels: catalog.NoLabel, scopes: catalog.NodeScope | catalog.UEScope,
			cellScope: true, getter: p.getPrbAvailUl},
		"RRU.PrbUsedDl": {labels: catalog.NoLabel, scopes: catalog.NodeScope | catalog.UEScope,
			cellScope: true, getter: p.getPrbUsedDl},
		"RRU.PrbUsedUl": {labels: catalog.NoLabel, scopes: catalog.NodeScope | catalog.UEScope,
			cellScope: true, getter: p.getPrbUsedUl},
		"RRU.PrbTotDl": {labels: catalog.NoLabel, scopes: catalog.NodeScope | catalog.UEScope,
			cellScope: true, getter: p.getPrbUsePercDl},
		"RRU.PrbTotUl": {labels: catalog.NoLabel, scopes: catalog.NodeScope | catalog.UEScope,
			cellScope: true, getter: p.getPrbUsePercUl},
		"DRB.RlcSduDelayDl": {labels: catalog.NoLabel, scopes: catalog.AllScopes,
			cellScope: true, getter: p.getDrbDlRlcSduLatency},
		"DRB.RlcDelayUl": {labels: catalog.NoLabel, scopes: catalog.AllScopes,
			cellScope: true, getter: p.getDrbUlRlcSduLatency},
		"DRB.AirIfDelayUl": {labels: catalog.NoLabel, scopes: catalog.AllScopes,
			cellScope: true, getter: p.getDelayUl},
		"DRB.UEThpDl": {labels: catalog.NoLabel, scopes: catalog.NodeScope | catalog.UEScope,
			cellScope: true, getter: p.getDrbDlMeanThroughput},
		"DRB.UEThpUl": {labels: catalog.NoLabel, scopes: catalog.NodeScope | catalog.UEScope,
			cellScope: true, getter: p.getDrbUlMeanThroughput},
		"DRB.RlcPacketDropRateDl": {labels: catalog.NoLabel, scopes: catalog.AllScopes,
			cellScope: true, getter: p.getDrbRlcPacketDropRateDl},
		"DRB.RlcSduTransmittedVolumeDL": {labels: catalog.NoLabel, scopes: catalog.AllScopes,
			cellScope: true, getter: p.getDrbRlcSduTransmittedVolumeDl},
		"DRB.RlcSduTransmittedVolumeUL": {labels: catalog.NoLabel, scopes: catalog.AllScopes,
			cellScope: true, getter: p.getDrbRlcSduTransmittedVolumeUl},
		"RACH.PreambleDedCell": {labels: catalog.NoLabel, scopes: catalog.NodeScope,
			cellScope: true, getter: p.getPrachCellCount},
	}
	if !checkMetricDefinitions(p.supported) {
		return nil, errors.New(errors.Invalid, "DU supported metrics are inconsistent with the catalog")
	}
	return p, nil
}

// ReportCellMetrics replaces the latest scheduler cell snapshot.
func (p *DuProvider) ReportCellMetrics(cellMetrics metrics.SchedulerCellMetrics) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nofCellPrbs = cellMetrics.NofPrbs
	p.nofDlSlots = cellMetrics.NofDlSlots
	p.nofUlSlots = cellMetrics.NofUlSlots
	p.nofDedCellPreambles = cellMetrics.NofPrachPreambles
	p.lastUeMetrics = append(p.lastUeMetrics[:0:0], cellMetrics.UeMetrics...)
}

// ReportRlcMetrics appends one RLC report to the UE's bounded history.
func (p *DuProvider) ReportRlcMetrics(rlcMetrics metrics.RlcMetrics) {
	p.mu.Lock()
	defer p.mu.Unlock()
	log.Debugf("Received RLC metrics: ue=%d drb=%d", rlcMetrics.UeIndex, rlcMetrics.DrbID)
	history := append(p.ueRlcMetrics[rlcMetrics.UeIndex], rlcMetrics)
	if len(history) > p.historyDepth {
		history = history[1:]
	}
	p.ueRlcMetrics[rlcMetrics.UeIndex] = history
}

// SupportedMetricNames lists the metric names measurable at the given scope.
func (p *DuProvider) SupportedMetricNames(scope catalog.Scope) []string {
	return supportedNames(p.supported, scope)
}

// IsCellSupported reports whether the cell is one of the node's cells.
func (p *DuProvider) IsCellSupported(cgi *common.Cgi) bool {
	for _, cell := range p.cells {
		if cell.Equal(cgi) {
			return true
		}
	}
	return false
}

// IsUeSupported reports whether the UE has reported metrics on this node.
func (p *DuProvider) IsUeSupported(ueID *common.UeID) bool {
	index, ok := ueIndex(ueID)
	if !ok {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if _, ok := p.ueRlcMetrics[index]; ok {
		return true
	}
	for _, ue := range p.lastUeMetrics {
		if ue.UeIndex == index {
			return true
		}
	}
	return false
}

// IsTestCondSupported reports whether a test-condition type can be evaluated.
func (p *DuProvider) IsTestCondSupported(condType common.TestCondType) bool {
	switch condType {
	case common.TestCondTypeGBr, common.TestCondTypeAMbr,
		common.TestCondTypeRSrp, common.TestCondTypeRSrq, common.TestCondTypeUlRSrp,
		common.TestCondTypeCQi, common.TestCondTypeFiveQi, common.TestCondTypeQCi,
		common.TestCondTypeSNssai:
		return true
	}
	return false
}

// IsMetricSupported reports whether a metric is servable with the given
// label, scope and cell-scope flag.
func (p *DuProvider) IsMetricSupported(measType kpmapi.MeasurementType, label *kpmapi.MeasurementLabel,
	scope catalog.Scope, cellScope bool) bool {
	return metricSupported(p.supported, measType, label, scope, cellScope)
}

// MatchingUes returns the UEs currently satisfying a style-3 matching
// condition list. Label variants do not narrow the UE set; test conditions
// are evaluated against the latest scheduler snapshot where possible.
func (p *DuProvider) MatchingUes(matchingCondList []*kpmapi.MatchingCondItem) []*common.UeID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var matching []*common.UeID
	for _, index := range p.knownUeIndexes() {
		matched := true
		for _, cond := range matchingCondList {
			if cond.TestCondInfo != nil && !p.evaluateTestCond(cond.TestCondInfo, index) {
				matched = false
				break
			}
		}
		if matched {
			matching = append(matching, duUeID(index))
		}
	}
	return matching
}

// MatchingUesPerSub returns the UEs currently satisfying a style-4
// matching-UE condition list.
func (p *DuProvider) MatchingUesPerSub(matchingUeCondList []*kpmapi.MatchingUeCondPerSubItem) []*common.UeID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var matching []*common.UeID
	for _, index := range p.knownUeIndexes() {
		matched := true
		for _, cond := range matchingUeCondList {
			if cond.TestCondInfo != nil && !p.evaluateTestCond(cond.TestCondInfo, index) {
				matched = false
				break
			}
		}
		if matched {
			matching = append(matching, duUeID(index))
		}
	}
	return matching
}

// GetMeasData collects the records for one metric through its getter.
func (p *DuProvider) GetMeasData(measType kpmapi.MeasurementType, labelInfoList []*kpmapi.LabelInfoItem,
	ues []*common.UeID, cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	metric, ok := p.supported[measType.MeasName]
	if !ok {
		log.Debugf("Metric %s not supported", measType.MeasName)
		return nil, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return metric.getter(labelInfoList, ues, cell)
}

func duUeID(index metrics.UeIndex) *common.UeID {
	return &common.UeID{GnbDuUeID: &common.UeIDGnbDu{GnbCuUeF1ApID: int64(index)}}
}

// knownUeIndexes lists the UEs with RLC history in ascending index order.
// Callers must hold the lock.
func (p *DuProvider) knownUeIndexes() []metrics.UeIndex {
	indexes := make(map[metrics.UeIndex]bool, len(p.ueRlcMetrics))
	for index := range p.ueRlcMetrics {
		indexes[index] = true
	}
	return sortedUeIndexes(indexes)
}

// evaluateTestCond checks one test condition for a UE. Condition types the DU
// does not observe, and conditions without an expression and integer value,
// are treated as satisfied; a UE with no scheduler sample fails an observed
// condition. Callers must hold the lock.
func (p *DuProvider) evaluateTestCond(cond *common.TestCondInfo, index metrics.UeIndex) bool {
	var observed *int64
	switch cond.TestType {
	case common.TestCondTypeCQi:
		for _, ue := range p.lastUeMetrics {
			if ue.UeIndex == index {
				value := int64(ue.CQI)
				observed = &value
			}
		}
	case common.TestCondTypeRSrp, common.TestCondTypeRSrq, common.TestCondTypeUlRSrp:
		for _, ue := range p.lastUeMetrics {
			if ue.UeIndex == index {
				value := int64(ue.PuschSnrDb)
				observed = &value
			}
		}
	default:
		return true
	}
	if cond.TestExpr == nil || cond.TestValue == nil || cond.TestValue.ValueInt == nil {
		return true
	}
	if observed == nil {
		return false
	}
	return compareInt(*cond.TestExpr, *observed, *cond.TestValue.ValueInt)
}

// schedulerUeMetrics returns the latest scheduler sample of one UE.
func (p *DuProvider) schedulerUeMetrics(index metrics.UeIndex) (metrics.SchedulerUeMetrics, bool) {
	for _, ue := range p.lastUeMetrics {
		if ue.UeIndex == index {
			return ue, true
		}
	}
	return metrics.SchedulerUeMetrics{}, false
}

// meanUePrbsUsed computes the per-UE mean of used PRBs from the latest
// scheduler sample, summed across UEs. Each UE total is divided by the slot
// count before summing, truncated to integer.
func (p *DuProvider) meanUePrbsUsed(downlink bool) int64 {
	slots := p.nofDlSlots
	if !downlink {
		slots = p.nofUlSlots
	}
	if slots == 0 {
		return 0
	}
	var used int64
	for _, ue := range p.lastUeMetrics {
		if downlink {
			used += int64(ue.TotPdschPrbsUsed / uint64(slots))
		} else {
			used += int64(ue.TotPuschPrbsUsed / uint64(slots))
		}
	}
	return used
}

func (p *DuProvider) getCqi(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.lastUeMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, false), true
	}
	ueMetrics := p.lastUeMetrics[0]
	return []*kpmapi.MeasurementRecordItem{integerItem(int64(ueMetrics.CQI))}, true
}

func (p *DuProvider) getRsrp(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.lastUeMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, false), true
	}
	ueMetrics := p.lastUeMetrics[0]
	return []*kpmapi.MeasurementRecordItem{integerItem(int64(ueMetrics.PuschSnrDb))}, true
}

func (p *DuProvider) getRsrq(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.lastUeMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, false), true
	}
	ueMetrics := p.lastUeMetrics[0]
	return []*kpmapi.MeasurementRecordItem{integerItem(int64(ueMetrics.PuschSnrDb))}, true
}

func (p *DuProvider) getPrbAvailDl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.lastUeMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, false), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debug("Metric RRU.PrbAvailDl supports only NO_LABEL label")
		return nil, false
	}
	avail := int64(p.nofCellPrbs) - p.meanUePrbsUsed(true)
	items := make([]*kpmapi.MeasurementRecordItem, 0)
	for i := 0; i < max(len(ues), 1); i++ {
		items = append(items, integerItem(avail))
	}
	return items, true
}

func (p *DuProvider) getPrbAvailUl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.lastUeMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, false), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debug("Metric RRU.PrbAvailUl supports only NO_LABEL label")
		return nil, false
	}
	avail := int64(p.nofCellPrbs) - p.meanUePrbsUsed(false)
	items := make([]*kpmapi.MeasurementRecordItem, 0)
	for i := 0; i < max(len(ues), 1); i++ {
		items = append(items, integerItem(avail))
	}
	return items, true
}

func (p *DuProvider) getPrbUsed(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	downlink bool, percent bool, metricName string) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.lastUeMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, false), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debugf("Metric %s supports only NO_LABEL label", metricName)
		return nil, false
	}
	slots := p.nofDlSlots
	if !downlink {
		slots = p.nofUlSlots
	}
	items := make([]*kpmapi.MeasurementRecordItem, 0)
	if len(ues) == 0 {
		used := p.meanUePrbsUsed(downlink)
		if percent && p.nofCellPrbs > 0 {
			used = used * 100 / int64(p.nofCellPrbs)
		}
		items = append(items, integerItem(used))
		return items, true
	}
	for _, ue := range ues {
		index, ok := ueIndex(ue)
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		ueMetrics, ok := p.schedulerUeMetrics(index)
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		var used int64
		if slots > 0 {
			if downlink {
				used = int64(ueMetrics.TotPdschPrbsUsed / uint64(slots))
			} else {
				used = int64(ueMetrics.TotPuschPrbsUsed / uint64(slots))
			}
		}
		if percent && p.nofCellPrbs > 0 {
			used = used * 100 / int64(p.nofCellPrbs)
		}
		items = append(items, integerItem(used))
	}
	return items, true
}

func (p *DuProvider) getPrbUsedDl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	return p.getPrbUsed(labelInfoList, ues, true, false, "RRU.PrbUsedDl")
}

func (p *DuProvider) getPrbUsedUl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	return p.getPrbUsed(labelInfoList, ues, false, false, "RRU.PrbUsedUl")
}

func (p *DuProvider) getPrbUsePercDl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	return p.getPrbUsed(labelInfoList, ues, true, true, "RRU.PrbTotDl")
}

func (p *DuProvider) getPrbUsePercUl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	return p.getPrbUsed(labelInfoList, ues, false, true, "RRU.PrbTotUl")
}

func (p *DuProvider) getPrachCellCount(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.lastUeMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, false), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debug("Metric RACH.PreambleDedCell supports only NO_LABEL label")
		return nil, false
	}
	return []*kpmapi.MeasurementRecordItem{integerItem(int64(p.nofDedCellPreambles))}, true
}

func (p *DuProvider) getDelayUl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.lastUeMetrics) == 0 {
		return noDataItems(ues, catalog.Real, true), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debug("Metric DRB.AirIfDelayUl supports only NO_LABEL label")
		return nil, false
	}
	items := make([]*kpmapi.MeasurementRecordItem, 0)
	if len(ues) == 0 {
		var sum float64
		for _, ue := range p.lastUeMetrics {
			if ue.AvgCrcDelayMs != nil {
				sum += *ue.AvgCrcDelayMs
			}
		}
		mean := sum / float64(len(p.lastUeMetrics))
		if mean != 0 {
			items = append(items, realItem(mean*10)) // unit is 0.1ms
		} else {
			items = append(items, noValueItem())
		}
		return items, true
	}
	for _, ue := range ues {
		index, ok := ueIndex(ue)
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		ueMetrics, ok := p.schedulerUeMetrics(index)
		if !ok || ueMetrics.AvgCrcDelayMs == nil {
			items = append(items, noValueItem())
			continue
		}
		items = append(items, realItem(*ueMetrics.AvgCrcDelayMs*10)) // unit is 0.1ms
	}
	return items, true
}

// ueThroughputKbps computes each UE's mean throughput in kbit/s over its RLC
// history window: the mean PDU byte count per report divided by the report
// period of the newest sample.
func (p *DuProvider) ueThroughputKbps(downlink bool) map[metrics.UeIndex]float64 {
	throughput := make(map[metrics.UeIndex]float64, len(p.ueRlcMetrics))
	for index, history := range p.ueRlcMetrics {
		if len(history) == 0 {
			continue
		}
		var numPduBytes uint64
		for _, sample := range history {
			if downlink {
				numPduBytes += sample.TxLow.NumPduBytesNoSegmentation + sample.TxLow.NumPduBytesWithSegmentation
			} else {
				numPduBytes += sample.Rx.NumPduBytes
			}
		}
		numPduBytes /= uint64(len(history))
		seconds := history[len(history)-1].MetricsPeriod.Seconds()
		if seconds == 0 {
			seconds = 1
		}
		throughput[index] = bytesToKbits(float64(numPduBytes)) / seconds
	}
	return throughput
}

func (p *DuProvider) getDrbMeanThroughput(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	downlink bool, metricName string) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.ueRlcMetrics) == 0 {
		return noDataItems(ues, catalog.Real, false), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debugf("Metric %s supports only NO_LABEL label", metricName)
		return nil, false
	}
	throughput := p.ueThroughputKbps(downlink)
	items := make([]*kpmapi.MeasurementRecordItem, 0)
	if len(ues) == 0 {
		var total float64
		for _, kbps := range throughput {
			total += math.Trunc(kbps)
		}
		items = append(items, realItem(total))
		return items, true
	}
	for _, ue := range ues {
		index, ok := ueIndex(ue)
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		kbps, ok := throughput[index]
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		items = append(items, realItem(math.Trunc(kbps)))
	}
	return items, true
}

func (p *DuProvider) getDrbDlMeanThroughput(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	return p.getDrbMeanThroughput(labelInfoList, ues, true, "DRB.UEThpDl")
}

func (p *DuProvider) getDrbUlMeanThroughput(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	return p.getDrbMeanThroughput(labelInfoList, ues, false, "DRB.UEThpUl")
}

func (p *DuProvider) getDrbRlcPacketDropRateDl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.ueRlcMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, true), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debug("Metric DRB.RlcPacketDropRateDl supports only NO_LABEL label")
		return nil, false
	}
	if cell != nil {
		log.Debug("Metric DRB.RlcPacketDropRateDl currently does not support cell_global_id filter")
	}
	items := make([]*kpmapi.MeasurementRecordItem, 0)
	if len(ues) == 0 {
		var totalDropped, totalSdus uint64
		for _, history := range p.ueRlcMetrics {
			for _, sample := range history {
				totalDropped += uint64(sample.TxHigh.NumDroppedSdus + sample.TxHigh.NumDiscardedSdus)
				totalSdus += uint64(sample.TxHigh.NumSdus)
			}
		}
		var dropRate float64
		if totalSdus > 0 {
			dropRate = float64(totalDropped) / float64(totalSdus)
		}
		items = append(items, integerItem(int64(dropRate*100)))
		return items, true
	}
	for _, ue := range ues {
		index, ok := ueIndex(ue)
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		history, ok := p.ueRlcMetrics[index]
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		var totalDropped, totalSdus uint64
		for _, sample := range history {
			totalDropped += uint64(sample.TxHigh.NumDroppedSdus + sample.TxHigh.NumDiscardedSdus)
			totalSdus += uint64(sample.TxHigh.NumSdus)
		}
		var dropRate float64
		if totalSdus > 0 {
			dropRate = float64(totalDropped) / float64(totalSdus)
		}
		items = append(items, integerItem(int64(dropRate*100)))
	}
	return items, true
}

func (p *DuProvider) getDrbRlcSduTransmittedVolume(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi, downlink bool, metricName string) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.ueRlcMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, false), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debugf("Metric %s supports only NO_LABEL label", metricName)
		return nil, false
	}
	if cell != nil {
		log.Debugf("Metric %s currently does not support cell_global_id filter", metricName)
	}
	volume := func(history []metrics.RlcMetrics) int64 {
		var bytes uint64
		for _, sample := range history {
			if downlink {
				bytes += sample.TxHigh.NumSduBytes
			} else {
				bytes += sample.Rx.NumSduBytes
			}
		}
		return int64(bytes * 8 / 1000) // unit is kbit
	}
	items := make([]*kpmapi.MeasurementRecordItem, 0)
	if len(ues) == 0 {
		var total int64
		for _, history := range p.ueRlcMetrics {
			total += volume(history)
		}
		items = append(items, integerItem(total))
		return items, true
	}
	for _, ue := range ues {
		index, ok := ueIndex(ue)
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		history, ok := p.ueRlcMetrics[index]
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		items = append(items, integerItem(volume(history)))
	}
	return items, true
}

func (p *DuProvider) getDrbRlcSduTransmittedVolumeDl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	return p.getDrbRlcSduTransmittedVolume(labelInfoList, ues, cell, true, "DRB.RlcSduTransmittedVolumeDL")
}

func (p *DuProvider) getDrbRlcSduTransmittedVolumeUl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	return p.getDrbRlcSduTransmittedVolume(labelInfoList, ues, cell, false, "DRB.RlcSduTransmittedVolumeUL")
}

func (p *DuProvider) getDrbDlRlcSduLatency(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.ueRlcMetrics) == 0 {
		return noDataItems(ues, catalog.Real, true), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debug("Metric DRB.RlcSduDelayDl supports only NO_LABEL label")
		return nil, false
	}
	items := make([]*kpmapi.MeasurementRecordItem, 0)
	if len(ues) == 0 {
		var avgLatencyUs float64
		for _, history := range p.ueRlcMetrics {
			var pulledSdus uint64
			var latencyUs uint64
			for _, sample := range history {
				pulledSdus += uint64(sample.TxLow.NumOfPulledSdus)
				latencyUs += sample.TxLow.SumSduLatencyUs
			}
			if pulledSdus > 0 && latencyUs > 0 {
				avgLatencyUs += float64(latencyUs) / float64(pulledSdus)
			}
		}
		if avgLatencyUs == 0 {
			items = append(items, noValueItem())
			return items, true
		}
		avgLatency := (avgLatencyUs / float64(len(p.ueRlcMetrics))) / 100 // unit is 0.1ms
		avgLatency = math.Round(avgLatency*10) / 10
		items = append(items, realItem(avgLatency))
		return items, true
	}
	for _, ue := range ues {
		index, ok := ueIndex(ue)
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		history, ok := p.ueRlcMetrics[index]
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		var numSdus uint64
		var latencyUs uint64
		for _, sample := range history {
			numSdus += uint64(sample.TxHigh.NumSdus)
			latencyUs += sample.TxLow.SumSduLatencyUs
		}
		if latencyUs == 0 || numSdus == 0 {
			items = append(items, noValueItem())
			continue
		}
		avgLatency := (float64(latencyUs) / float64(numSdus)) / 100 // unit is 0.1ms
		avgLatency = math.Round(avgLatency*10) / 10
		items = append(items, realItem(avgLatency))
	}
	return items, true
}

func (p *DuProvider) getDrbUlRlcSduLatency(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.ueRlcMetrics) == 0 {
		return noDataItems(ues, catalog.Real, true), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debug("Metric DRB.RlcDelayUl supports only NO_LABEL label")
		return nil, false
	}
	items := make([]*kpmapi.MeasurementRecordItem, 0)
	if len(ues) == 0 {
		var avgLatencyUs float64
		for _, history := range p.ueRlcMetrics {
			var numSdus uint64
			var latencyUs uint64
			for _, sample := range history {
				numSdus += uint64(sample.Rx.NumSdus)
				latencyUs += sample.Rx.SduLatencyUs
			}
			if numSdus > 0 && latencyUs > 0 {
				avgLatencyUs += float64(latencyUs) / float64(numSdus)
			}
		}
		if avgLatencyUs == 0 {
			items = append(items, noValueItem())
			return items, true
		}
		items = append(items, realItem((avgLatencyUs/float64(len(p.ueRlcMetrics)))/100)) // unit is 0.1ms
		return items, true
	}
	for _, ue := range ues {
		index, ok := ueIndex(ue)
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		history, ok := p.ueRlcMetrics[index]
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		var numSdus uint64
		var latencyUs uint64
		for _, sample := range history {
			numSdus += uint64(sample.Rx.NumSdus)
			latencyUs += sample.Rx.SduLatencyUs
		}
		if latencyUs == 0 || numSdus == 0 {
			items = append(items, noValueItem())
			continue
		}
		items = append(items, realItem((float64(latencyUs)/float64(numSdus))/100)) // unit is 0.1ms
	}
	return items, true
}

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"sync"

	"github.com/onosproject/onos-lib-go/pkg/errors"

	"github.com/onosproject/e2-agent/api/e2sm/common"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/metrics"
	"github.com/onosproject/e2-agent/pkg/metrics/catalog"
)

// DefaultPdcpHistoryDepth bounds the per-UE PDCP history of the CU-UP provider.
const DefaultPdcpHistoryDepth = 10

// CuUpProvider aggregates PDCP metrics on a gNB-CU-UP and serves the KPM
// measurement queries over them.
type CuUpProvider struct {
	mu           sync.RWMutex
	supported    map[string]supportedMetric
	historyDepth int

	// Bounded per-UE PDCP history; oldest entry evicted beyond historyDepth.
	uePdcpMetrics map[metrics.UeIndex][]metrics.PdcpMetrics
}

// CuUpProviderOption tailors a CU-UP provider.
type CuUpProviderOption func(*CuUpProvider)

// WithPdcpHistoryDepth overrides the per-UE PDCP history bound.
func WithPdcpHistoryDepth(depth int) CuUpProviderOption {
	return func(p *CuUpProvider) {
		p.historyDepth = depth
	}
}

// NewCuUpProvider creates a CU-UP measurement provider. The supported-metric
// table is cross-checked against the catalog; an inconsistent table fails
// construction.
func NewCuUpProvider(opts ...CuUpProviderOption) (*CuUpProvider, error) {
	p := &CuUpProvider{
		historyDepth:  DefaultPdcpHistoryDepth,
		uePdcpMetrics: make(map[metrics.UeIndex][]metrics.PdcpMetrics),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.supported = map[string]supportedMetric{
		"DRB.PdcpReordDelayUl": {labels: catalog.NoLabel, scopes: catalog.NodeScope,
			cellScope: false, getter: p.getPdcpReorderingDelayUl},
		"DRB.PacketSuccessRateUlgNBUu": {labels: catalog.NoLabel, scopes: catalog.NodeScope,
			cellScope: true, getter: p.getPacketSuccessRateUlGnbUu},
		"DRB.PdcpSduVolumeDL": {labels: catalog.NoLabel, scopes: catalog.NodeScope | catalog.UEScope,
			cellScope: true, getter: p.getPdcpSduVolumeDl},
		"DRB.PdcpSduVolumeUL": {labels: catalog.NoLabel, scopes: catalog.NodeScope | catalog.UEScope,
			cellScope: true, getter: p.getPdcpSduVolumeUl},
	}
	if !checkMetricDefinitions(p.supported) {
		return nil, errors.New(errors.Invalid, "CU-UP supported metrics are inconsistent with the catalog")
	}
	return p, nil
}

// ReportPdcpMetrics appends one PDCP report to the UE's bounded history.
func (p *CuUpProvider) ReportPdcpMetrics(pdcpMetrics metrics.PdcpMetrics) {
	p.mu.Lock()
	defer p.mu.Unlock()
	log.Debugf("Received PDCP metrics: ue=%d drb=%d", pdcpMetrics.UeIndex, pdcpMetrics.DrbID)
	history := append(p.uePdcpMetrics[pdcpMetrics.UeIndex], pdcpMetrics)
	if len(history) > p.historyDepth {
		history = history[1:]
	}
	p.uePdcpMetrics[pdcpMetrics.UeIndex] = history
}

// SupportedMetricNames lists the metric names measurable at the given scope.
func (p *CuUpProvider) SupportedMetricNames(scope catalog.Scope) []string {
	return supportedNames(p.supported, scope)
}

// IsCellSupported always reports false: the CU-UP provider holds no cell
// list, so no cell global id is recognized.
func (p *CuUpProvider) IsCellSupported(cgi *common.Cgi) bool {
	return false
}

// IsUeSupported reports whether the UE has reported PDCP metrics.
func (p *CuUpProvider) IsUeSupported(ueID *common.UeID) bool {
	index, ok := ueIndex(ueID)
	if !ok {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok = p.uePdcpMetrics[index]
	return ok
}

// IsTestCondSupported reports whether a test-condition type can be evaluated.
func (p *CuUpProvider) IsTestCondSupported(condType common.TestCondType) bool {
	switch condType {
	case common.TestCondTypeGBr, common.TestCondTypeAMbr, common.TestCondTypeSNssai,
		common.TestCondTypeFiveQi, common.TestCondTypeQCi:
		return true
	}
	return false
}

// IsMetricSupported reports whether a metric is servable with the given
// label, scope and cell-scope flag.
func (p *CuUpProvider) IsMetricSupported(measType kpmapi.MeasurementType, label *kpmapi.MeasurementLabel,
	scope catalog.Scope, cellScope bool) bool {
	return metricSupported(p.supported, measType, label, scope, cellScope)
}

// MatchingUes returns all UEs with PDCP history; the CU-UP cannot narrow by
// radio test conditions.
func (p *CuUpProvider) MatchingUes(matchingCondList []*kpmapi.MatchingCondItem) []*common.UeID {
	return p.allUes()
}

// MatchingUesPerSub returns all UEs with PDCP history.
func (p *CuUpProvider) MatchingUesPerSub(matchingUeCondList []*kpmapi.MatchingUeCondPerSubItem) []*common.UeID {
	return p.allUes()
}

func (p *CuUpProvider) allUes() []*common.UeID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	indexes := make(map[metrics.UeIndex]bool, len(p.uePdcpMetrics))
	for index := range p.uePdcpMetrics {
		indexes[index] = true
	}
	var ues []*common.UeID
	for _, index := range sortedUeIndexes(indexes) {
		ues = append(ues, cuUpUeID(index))
	}
	return ues
}

func cuUpUeID(index metrics.UeIndex) *common.UeID {
	return &common.UeID{GnbCuUpUeID: &common.UeIDGnbCuUp{GnbCuCpUeE1ApID: int64(index)}}
}

// GetMeasData collects the records for one metric through its getter.
func (p *CuUpProvider) GetMeasData(measType kpmapi.MeasurementType, labelInfoList []*kpmapi.LabelInfoItem,
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

func (p *CuUpProvider) getPdcpReorderingDelayUl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.uePdcpMetrics) == 0 {
		return noDataItems(ues, catalog.Real, true), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debug("Metric DRB.PdcpReordDelayUl supports only NO_LABEL label")
		return nil, false
	}
	var avgDelayUs float64
	var observedUes int
	for _, history := range p.uePdcpMetrics {
		var reorderedPdus uint64
		var delayUs uint64
		for _, sample := range history {
			reorderedPdus += uint64(sample.Rx.NumReorderedPdus)
			delayUs += sample.Rx.ReorderingDelayUs
		}
		if reorderedPdus > 0 && delayUs > 0 {
			avgDelayUs += float64(delayUs) / float64(reorderedPdus)
			observedUes++
		}
	}
	if observedUes == 0 {
		return []*kpmapi.MeasurementRecordItem{noValueItem()}, true
	}
	return []*kpmapi.MeasurementRecordItem{realItem((avgDelayUs / float64(observedUes)) / 100)}, true // unit is 0.1ms
}

func (p *CuUpProvider) getPacketSuccessRateUlGnbUu(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.uePdcpMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, false), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debug("Metric DRB.PacketSuccessRateUlgNBUu supports only NO_LABEL label")
		return nil, false
	}
	var totalPdus, droppedPdus uint64
	for _, history := range p.uePdcpMetrics {
		for _, sample := range history {
			totalPdus += uint64(sample.Rx.NumPdus)
			droppedPdus += uint64(sample.Rx.NumDroppedPdus)
		}
	}
	var successRate float64
	if totalPdus > 0 {
		successRate = float64(totalPdus-droppedPdus) / float64(totalPdus)
	}
	return []*kpmapi.MeasurementRecordItem{integerItem(int64(successRate * 100))}, true
}

func (p *CuUpProvider) getPdcpSduVolume(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	downlink bool, metricName string) ([]*kpmapi.MeasurementRecordItem, bool) {
	if len(p.uePdcpMetrics) == 0 {
		return noDataItems(ues, catalog.Integer, false), true
	}
	if !labelListAccepted(labelInfoList) {
		log.Debugf("Metric %s supports only NO_LABEL label", metricName)
		return nil, false
	}
	volume := func(history []metrics.PdcpMetrics) int64 {
		var bytes uint64
		for _, sample := range history {
			if downlink {
				bytes += sample.Tx.NumSduBytes
			} else {
				bytes += sample.Rx.NumSduBytes
			}
		}
		return int64(bytes * 8 / 1000) // unit is kbit
	}
	items := make([]*kpmapi.MeasurementRecordItem, 0)
	if len(ues) == 0 {
		var total int64
		for _, history := range p.uePdcpMetrics {
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
		history, ok := p.uePdcpMetrics[index]
		if !ok {
			items = append(items, noValueItem())
			continue
		}
		items = append(items, integerItem(volume(history)))
	}
	return items, true
}

func (p *CuUpProvider) getPdcpSduVolumeDl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	return p.getPdcpSduVolume(labelInfoList, ues, true, "DRB.PdcpSduVolumeDL")
}

func (p *CuUpProvider) getPdcpSduVolumeUl(labelInfoList []*kpmapi.LabelInfoItem, ues []*common.UeID,
	cell *common.Cgi) ([]*kpmapi.MeasurementRecordItem, bool) {
	return p.getPdcpSduVolume(labelInfoList, ues, false, "DRB.PdcpSduVolumeUL")
}

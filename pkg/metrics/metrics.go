// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package metrics defines the streaming metric samples the RAN layers push
// into the measurement providers: the scheduler cell snapshot, the per-UE RLC
// report and the per-UE PDCP report.
package metrics

import "time"

// UeIndex identifies a UE inside the node. The gNB-CU UE F1AP id doubles as
// the UE index on the E2 interface.
type UeIndex uint32

// SchedulerUeMetrics is the per-UE part of a scheduler cell snapshot.
type SchedulerUeMetrics struct {
	UeIndex          UeIndex
	CQI              uint8
	PuschSnrDb       float64
	TotPdschPrbsUsed uint64
	TotPuschPrbsUsed uint64
	AvgCrcDelayMs    *float64
}

// SchedulerCellMetrics is the latest scheduler snapshot for one cell. It is
// replaced on every report; only the most recent sample is kept.
type SchedulerCellMetrics struct {
	NofPrbs           uint32
	NofDlSlots        uint32
	NofUlSlots        uint32
	NofPrachPreambles uint32
	UeMetrics         []SchedulerUeMetrics
}

// RlcTxHighMetrics counts SDUs entering the RLC transmit path.
type RlcTxHighMetrics struct {
	NumSdus          uint32
	NumSduBytes      uint64
	NumDroppedSdus   uint32
	NumDiscardedSdus uint32
}

// RlcTxLowMetrics counts PDUs leaving the RLC transmit path.
type RlcTxLowMetrics struct {
	NumPduBytesNoSegmentation   uint64
	NumPduBytesWithSegmentation uint64
	NumOfPulledSdus             uint32
	SumSduLatencyUs             uint64
}

// RlcRxMetrics counts the RLC receive path.
type RlcRxMetrics struct {
	NumSdus      uint32
	NumSduBytes  uint64
	NumPduBytes  uint64
	SduLatencyUs uint64
}

// RlcMetrics is one per-UE, per-bearer RLC report covering MetricsPeriod.
type RlcMetrics struct {
	UeIndex       UeIndex
	DrbID         uint8
	TxHigh        RlcTxHighMetrics
	TxLow         RlcTxLowMetrics
	Rx            RlcRxMetrics
	MetricsPeriod time.Duration
}

// PdcpTxMetrics counts the PDCP transmit path.
type PdcpTxMetrics struct {
	NumSdus     uint32
	NumSduBytes uint64
	NumPdus     uint32
	NumPduBytes uint64
}

// PdcpRxMetrics counts the PDCP receive path.
type PdcpRxMetrics struct {
	NumSdus           uint32
	NumSduBytes       uint64
	NumPdus           uint32
	NumPduBytes       uint64
	NumDroppedPdus    uint32
	NumOutOfOrderPdus uint32
	ReorderingDelayUs uint64
	NumReorderedPdus  uint32
}

// PdcpMetrics is one per-UE PDCP report from the CU-UP covering MetricsPeriod.
type PdcpMetrics struct {
	UeIndex       UeIndex
	DrbID         uint8
	Tx            PdcpTxMetrics
	Rx            PdcpRxMetrics
	MetricsPeriod time.Duration
}

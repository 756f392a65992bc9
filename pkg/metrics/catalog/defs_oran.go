// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package catalog

// Measurements defined in O-RAN.WG3.E2SM-KPM-R003-v03.00 on top of the
// 3GPP TS 28.552 set.
var metricsOran = []Metric{
	{Name: "DRB.RlcSduTransmittedVolumeDL", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.RlcSduTransmittedVolumeUL", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PerDataVolumeDLDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PerDataVolumeULDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.RlcPacketDropRateDLDist", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PacketLossRateULDist", ObjectClass: NrCellCu | GnbCuUp, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "L1M.DL-SS-RSRP", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Real, Units: "-", OptionalLabels: SsbIndexLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "L1M.DL-SS-SINR", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Real, Units: "-", OptionalLabels: SsbIndexLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "L1M.UL-SRS-RSRP", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Real, Units: "W", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
}

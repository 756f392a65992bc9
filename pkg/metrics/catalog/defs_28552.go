// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package catalog

// Performance measurements defined in 3GPP TS 28.552, carried over to the
// E2SM-KPM measurement name space by O-RAN WG3.
var metrics28552 = []Metric{
	{Name: "DRB.AirIfDelayDl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Real, Units: "ms", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.AirIfDelayDist", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.AirIfDelayUl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Real, Units: "ms", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.RlcDelayUl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Real, Units: "ms", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PdcpReordDelayUl", ObjectClass: GnbCuUp, Method: DerivedEvent, DataType: Real, Units: "ms", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.DelayDlNgranUeDist", ObjectClass: NrCellCu | GnbCuUp, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.DelayUlNgranUeDist", ObjectClass: NrCellCu | GnbCuUp, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.DelayUlNgranUeIncD1Dist", ObjectClass: NrCellCu | GnbCuUp, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "GTP.DelayDlPsaUpfNgranMean", ObjectClass: GnbCuUp, Method: DerivedEvent, DataType: Real, Units: "us", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "GTP.DelayDlPsaUpfNgranDist", ObjectClass: GnbCuUp, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "RRU.PrbTotDl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "%", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbTotUl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "%", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbTotDlDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "%", OptionalLabels: DistBinXLabel | NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbTotUlDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "%", OptionalLabels: DistBinXLabel | NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbUsedDl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel | NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbAvailDl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbUsedUl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel | NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbAvailUl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.MaxPrbUsedDl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel | NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.MaxPrbUsedUl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel | NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbTotDlMimo", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "%", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbTotUlMimo", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "%", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbTotSdmDl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "%", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRU.PrbTotSdmUl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "%", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.UEThpDl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Real, Units: "kbps", OptionalLabels: FiveQiLabel | SliceIDLabel | PlmnIDLabel | NoLabel, OptionalScopes: AllScopes},
	{Name: "DRB.UEThpDlDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | FiveQiLabel | SliceIDLabel | PlmnIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.UEThpUl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Real, Units: "kbps", OptionalLabels: FiveQiLabel | SliceIDLabel | PlmnIDLabel | NoLabel, OptionalScopes: AllScopes},
	{Name: "DRB.UEThpUlDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | FiveQiLabel | SliceIDLabel | PlmnIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.UEUnresVolDl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "%", OptionalLabels: FiveQiLabel | SliceIDLabel | PlmnIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.UEUnresVolUl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "%", OptionalLabels: FiveQiLabel | SliceIDLabel | PlmnIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PDCP.UEThpDl", ObjectClass: NrCellDu | GnbCuUp, Method: DerivedEvent, DataType: Real, Units: "kbps", OptionalLabels: FiveQiLabel, OptionalScopes: AllScopes},
	{Name: "RRC.ConnMean", ObjectClass: NrCellCu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: PlmnIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ConnMax", ObjectClass: NrCellCu, Method: StatusInspection, DataType: Integer, Units: "%", OptionalLabels: PlmnIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.InactiveConnMean", ObjectClass: NrCellCu, Method: StatusInspection, DataType: Real, Units: "-", OptionalLabels: PlmnIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.InactiveConnMax", ObjectClass: NrCellCu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "SM.PDUSessionSetupReq", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "SM.PDUSessionSetupSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "SM.MeanPDUSessionSetupReq", ObjectClass: NrCellCu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "SM.MaxPDUSessionSetupReq", ObjectClass: NrCellCu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoPrepInterReq", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoPrepInterSucc", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoPrepInterFail", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoResAlloInterReq", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoResAlloInterSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoResAlloInterFail", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeInterReq", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeInterSucc", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeInterFail", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeInterReq.TimeMean", ObjectClass: NrCellCu, Method: DerivedEvent, DataType: Integer, Units: "ms", OptionalLabels: SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeInterReq.TimeMax", ObjectClass: NrCellCu, Method: DerivedEvent, DataType: Integer, Units: "ms", OptionalLabels: SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeInterSSBSucc", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeInterSSBFail", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeIntraReq", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeIntraSucc", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOut5gsToEpsPrepReq", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOut5gsToEpsPrepSucc", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOut5gsToEpsPrepFail", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoIncEpsTo5gsResAlloReq", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoIncEpsTo5gsResAlloSucc", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoIncEpsTo5gsResAlloFail", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOutExe5gsToEpsReq", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOutExe5gsToEpsSucc", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOutExe5gsToEpsFail", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOut5gsToEpsFallbackPrepReq", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOut5gsToEpsFallbackPrepSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOut5gsToEpsFallbackPrepFail", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOutExe5gsToEpsFallbackSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoOutExe5gsToEpsFallbackFail", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.Ho5gsToEpsFallbackTimeMean", ObjectClass: NrCellCu, Method: DerivedEvent, DataType: Integer, Units: "ms", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeHo5gsToEpsFallbackTimeMean", ObjectClass: NrCellCu, Method: DerivedEvent, DataType: Integer, Units: "ms", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.Redirection.5gsToEpsFallback", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeIntraFreqReq", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeIntraFreqSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeInterFreqReq", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.HoExeInterFreqSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.ChoPrepInterReq", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.ChoPrepInterSucc", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.ChoPrepInterFail", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.ChoResAlloInterReq", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.ChoResAlloInterSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.ChoResAlloInterFail", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.ConfigInterReqCho", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.ConfigInterReqChoUes", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.ChoExeInterSucc", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MM.ChoExeInterReq.TimeMean", ObjectClass: NrCellCu, Method: DerivedEvent, DataType: Integer, Units: "ms", OptionalLabels: SliceIDLabel, OptionalScopes: NodeScope},
	{Name: "MM.ChoExeInterReq.TimeMax", ObjectClass: NrCellCu, Method: DerivedEvent, DataType: Integer, Units: "ms", OptionalLabels: SliceIDLabel, OptionalScopes: NodeScope},
	{Name: "MM.ChoPrepInterReqUes", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.ChoPrepInterSuccUes", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.ChoPrepInterFailUes", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.ConfigIntraReqCho", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.ConfigIntraReqChoUes", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.ChoExeIntraSucc", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoPrepInterReq", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoPrepInterSucc", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoPrepInterFail", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoResAlloInterReq", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoResAlloInterSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoResAlloInterFail", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoExeInterReq", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoExeInterSucc", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoExeInterFail", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoExeIntraReq", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoExeIntraSucc", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "TB.TotNbrDlInitial", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "TB.IntialErrNbrDl", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "TB.TotNbrDl", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: LayerMuMimoLabel, OptionalScopes: NodeScope},
	{Name: "TB.ErrTotNbrDl", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: LayerMuMimoLabel, OptionalScopes: NodeScope},
	{Name: "TB.ResidualErrNbrDl", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "TB.TotNbrUlInit", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "TB.ErrNbrUlInitial", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "TB.TotNbrUl", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: LayerMuMimoLabel, OptionalScopes: NodeScope},
	{Name: "TB.ErrTotNbrUl", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: LayerMuMimoLabel, OptionalScopes: NodeScope},
	{Name: "TB.ResidualErrNbrUl", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "DRB.EstabAtt", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.EstabSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.RelActNbr", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.SessionTime", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "ms", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.InitialEstabAtt", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.InitialEstabSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.ResumeAtt", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.ResumeSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.MeanEstabSucc", ObjectClass: NrCellCu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.MaxEstabSucc", ObjectClass: NrCellCu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.GTPUPathFailure", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.EstabAttDC", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.EstabSuccDC", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "CARR.WBCQIDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | DistBinYLabel | DistBinXLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "CARR.PDSCHMCSDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | DistBinYLabel | DistBinXLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "CARR.PUSCHMCSDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | DistBinYLabel | DistBinXLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "CARR.MUPDSCHMCSDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "CARR.MUPUSCHMCSDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.RelActNbr", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SumLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.ReleaseAttNbr", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.SessionTimeQoS", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "ms", OptionalLabels: FiveQiLabel | SumLabel, OptionalScopes: AllScopes},
	{Name: "QF.SessionTimeUE", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "ms", OptionalLabels: NoLabel, OptionalScopes: AllScopes},
	{Name: "QF.EstabAttNbr", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel | SumLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.EstabSuccNbr", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel | SumLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.EstabFailNbr", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.InitialEstabAttNbr", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel | SumLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.InitialEstabSuccNbr", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel | SumLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.InitialEstabFailNbr", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.ModNbrAtt", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.ModNbrSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "QF.ModNbrFail", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ConnEstabAtt", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ConnEstabSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ConnEstabFailCause", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "UECNTX.ConnEstabAtt", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "UECNTX.ConnEstabSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "RRC.ReEstabAtt", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ReEstabSuccWithUeContext", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ReEstabSuccWithoutUeContext", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ReEstabFallbackToSetupAtt", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ResumeAtt", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ResumeSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ResumeSuccByFallback", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ResumeFollowedbyNetworkRelease", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ResumeFollowedbySuspension", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RRC.ResumeFallbackToSetupAtt", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "RACH.PreambleDedCell", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "RACH.PreambleACell", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "RACH.PreambleBCell", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "RACH.PreambleDed", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: SsbIndexLabel, OptionalScopes: NodeScope},
	{Name: "RACH.PreambleA", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: SsbIndexLabel, OptionalScopes: NodeScope},
	{Name: "RACH.PreambleB", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: SsbIndexLabel, OptionalScopes: NodeScope},
	{Name: "RACH.PreambleDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "RACH.AccessDelayDist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "MR.IntraCellSSBSwitchReq", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MR.IntrCellSuccSSBSwitch", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "L1M.SS-RSRP", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "L1M.SS-RSRPNrNbr", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: SsbIndexLabel | DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "L1M.RSRPEutraNbr", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "MR.NRScSRSRSRP", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "DRB.MeanActiveUeDl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: PlmnIDLabel | SliceIDLabel | FiveQiLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.MaxActiveUeDl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: PlmnIDLabel | SliceIDLabel | FiveQiLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.MeanActiveUeUl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: PlmnIDLabel | SliceIDLabel | FiveQiLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.MaxActiveUeUl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: PlmnIDLabel | SliceIDLabel | FiveQiLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "5QI1QoSflow.Rel.Average.NormCallDuration", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "ms", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "5QI1QoSflow.Rel.Average.AbnormCallDuration", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "ms", OptionalLabels: NoLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "5QI1QoSflow.Rel.NormCallDuration", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "5QI1QoSflow.Rel.AbnormCallDuration", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "HO.IntraSys.TooEarly", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.IntraSys.TooLate", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.IntraSys.ToWrongCell", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.InterSys.TooEarly", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.InterSys.TooLate", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.InterSys.Unnecessary", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.InterSys.PingPong", ObjectClass: NrCellCu | EutranRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.IntraSys.bTooEarly.NCI", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.IntraSys.bTooLate.NCI", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.IntraSys.bToWrongCell.NCI", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.InterSys.bTooLate.ECGI", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.InterSys.bUnnecessary.ECGI", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "HO.InterSys.bPingPong.NCI", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "L1M.PHR1", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "PAG.ReceivedNbrCnInitiated", ObjectClass: GnbCuUp, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "PAG.ReceivedNbrRanIntiated", ObjectClass: GnbCuUp, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "PAG.ReceivedNbr", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "PAG.DiscardedNbrCnInitiated", ObjectClass: GnbCuUp, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "PAG.DiscardedNbrRanInitiated", ObjectClass: GnbCuUp, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "PAG.DiscardedNbr", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "L1M.SSBBeamRelatedUeNbr", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: SsbIndexLabel, OptionalScopes: NodeScope},
	{Name: "CARR.MaxTxPwr", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Real, Units: "dBm", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "CARR.NRCellDU", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Real, Units: "dBm", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "CARR.MUPDSCHRB", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "CARR.MUPUSCHRB", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "RRU.MaxLayerDlMimo", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Real, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "RRU.MaxLayerUlMimo", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Real, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "CARR.AverageLayersDl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Real, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "CARR.AverageLayersUl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Real, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MIMOLayersDLy", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Real, Units: "m", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MIMOLayersULy", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Real, Units: "m", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "PDSCHPRBsLayer", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Real, Units: "-", OptionalLabels: DistBinYLabel, OptionalScopes: NodeScope},
	{Name: "PUSCHPRBsLayer", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Real, Units: "-", OptionalLabels: DistBinYLabel, OptionalScopes: NodeScope},
	{Name: "MR.NRScSSRSRQ", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "MR.SS-RSRQPerSSB", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: SsbIndexLabel | DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "MR.SS-RSRQ", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: SsbIndexLabel | DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "MR.NRScSSSINR", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "MR.SS-SINRPerSSB", ObjectClass: Beam, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: SsbIndexLabel | DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "MR.SS-SINR", ObjectClass: NrCellCu | NrCellRelation, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: SsbIndexLabel | DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "L1M.ATADist", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel, OptionalScopes: NodeScope},
	{Name: "GTP.InDataPktPacketLossN3gNB", ObjectClass: GnbCuUp, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope},
	{Name: "DRB.PacketLossRateUu", ObjectClass: NrCellDu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.PdcpSduVolumeDL", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PdcpSduVolumeX2DL", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PdcpSduVolumeXnDL", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PdcpSduVolumeUL", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PdcpSduVolumeX2UL", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PdcpSduVolumeXnUL", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PacketSuccessRateUlgNBUu", ObjectClass: NrCellCu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "MeanTime5QI1Flow.RelDoubleNG", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "ms", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "DRB.PacketLossRateUl", ObjectClass: NrCellCu | GnbCuUp, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.F1UpacketLossRateUl", ObjectClass: GnbCuUp, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.F1UpacketLossRateDl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: NodeScope | UEScope},
	{Name: "DRB.PdcpPacketDropRateDl", ObjectClass: NrCellCu | GnbCuUp, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.RlcPacketDropRateDl", ObjectClass: NrCellDu, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PdcpSduDelayDl", ObjectClass: GnbCuUp, Method: DerivedEvent, DataType: Real, Units: "0.1ms", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PdcpF1DelayDl", ObjectClass: GnbCuUp, Method: DerivedEvent, DataType: Real, Units: "0.1ms", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.RlcSduDelayDl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Real, Units: "0.1ms", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.PdcpSduDelayDlDist", ObjectClass: GnbCuUp, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.GtpF1DelayDlDist", ObjectClass: GnbCuUp, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.RlcSduDelayDlDist", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.RlcSduLatencyDl", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Real, Units: "0.1ms", OptionalLabels: NoLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.RlcSduLatencyDlDist", ObjectClass: NrCellDu, Method: DerivedEvent, DataType: Integer, Units: "-", OptionalLabels: DistBinXLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "UECNTX.RelReq", ObjectClass: NrCellDu | Beam, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel | SumLabel, OptionalScopes: NodeScope},
	{Name: "UECNTX.RelCmd", ObjectClass: NrCellCu | Beam, Method: StatusInspection, DataType: Integer, Units: "-", OptionalLabels: NoLabel | SumLabel, OptionalScopes: NodeScope},
	{Name: "QosFlow.PdcpPduVolumeDL", ObjectClass: NrCellCu | GnbCuUp, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "QosFlow.PdcpPduVolumeUL", ObjectClass: NrCellCu | GnbCuUp, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "QosFlow.PdcpSduVolumeDl", ObjectClass: NrCellCu | GnbCuUp, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "QosFlow.PdcpSduVolumeUl", ObjectClass: NrCellCu | GnbCuUp, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.XnuPdcpSduVolumeDl", ObjectClass: EpXnU, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "DRB.XnuPdcpSduVolumeUl", ObjectClass: EpXnU, Method: CumulativeCounter, DataType: Integer, Units: "kbit", OptionalLabels: PlmnIDLabel | FiveQiLabel | SliceIDLabel, OptionalScopes: AllScopes},
	{Name: "MM.HoPrepIntraReq", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.HoPrepIntraSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.ChoPrepIntraReq", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.ChoPrepIntraSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoPrepIntraReq", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.DapsHoPrepIntraSucc", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.ChoPrepIntraReqUes", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
	{Name: "MM.ChoPrepIntraSuccUes", ObjectClass: NrCellCu, Method: CumulativeCounter, DataType: Integer, Units: "-", OptionalLabels: NoLabel, OptionalScopes: NodeScope},
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package common holds the decoded shapes of the E2SM common IEs shared by the
// KPM and CCC service models. These mirror the O-RAN E2SM v3 ASN.1 definitions;
// PER packing and unpacking is performed by the registered model plugin, the
// engine only works on the decoded form.
package common

import "bytes"

// PlmnIdentity is the 3-octet encoded PLMN identity (MCC+MNC).
type PlmnIdentity struct {
	Value []byte
}

// NrCgi is the NR cell global identity: PLMN identity plus the 36-bit NR cell identity.
type NrCgi struct {
	PlmnID   *PlmnIdentity
	NrCellID uint64
}

// EutraCgi is the E-UTRA cell global identity with its 28-bit cell identity.
type EutraCgi struct {
	PlmnID      *PlmnIdentity
	EutraCellID uint64
}

// Cgi is the cell-global-id choice.
type Cgi struct {
	NrCgi    *NrCgi
	EutraCgi *EutraCgi
}

// Equal reports whether two cell global identities refer to the same cell.
func (c *Cgi) Equal(other *Cgi) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.NrCgi != nil && other.NrCgi != nil {
		return bytes.Equal(c.NrCgi.PlmnID.Value, other.NrCgi.PlmnID.Value) &&
			c.NrCgi.NrCellID == other.NrCgi.NrCellID
	}
	if c.EutraCgi != nil && other.EutraCgi != nil {
		return bytes.Equal(c.EutraCgi.PlmnID.Value, other.EutraCgi.PlmnID.Value) &&
			c.EutraCgi.EutraCellID == other.EutraCgi.EutraCellID
	}
	return false
}

// Snssai is the slice identifier: service type plus optional differentiator.
type Snssai struct {
	Sst []byte
	Sd  []byte
}

// UeIDGnbDu identifies a UE at a gNB-DU through its F1AP id.
type UeIDGnbDu struct {
	GnbCuUeF1ApID int64
	RanUeID       []byte
}

// UeIDGnbCuUp identifies a UE at a gNB-CU-UP through its E1AP id.
type UeIDGnbCuUp struct {
	GnbCuCpUeE1ApID int64
	RanUeID         []byte
}

// UeIDGnb identifies a UE at a gNB through its NGAP id.
type UeIDGnb struct {
	AmfUeNgapID int64
	Guami       []byte
}

// UeID is the UE-id choice.
type UeID struct {
	GnbDuUeID   *UeIDGnbDu
	GnbCuUpUeID *UeIDGnbCuUp
	GnbUeID     *UeIDGnb
}

// Equal reports whether two UE ids identify the same UE. Only ids of the
// same variant compare equal.
func (u *UeID) Equal(other *UeID) bool {
	if u == nil || other == nil {
		return u == other
	}
	switch {
	case u.GnbDuUeID != nil && other.GnbDuUeID != nil:
		return u.GnbDuUeID.GnbCuUeF1ApID == other.GnbDuUeID.GnbCuUeF1ApID
	case u.GnbCuUpUeID != nil && other.GnbCuUpUeID != nil:
		return u.GnbCuUpUeID.GnbCuCpUeE1ApID == other.GnbCuUpUeID.GnbCuCpUeE1ApID
	case u.GnbUeID != nil && other.GnbUeID != nil:
		return u.GnbUeID.AmfUeNgapID == other.GnbUeID.AmfUeNgapID
	}
	return false
}

// TestCondType enumerates the test-condition variants used by the
// condition-matching report styles.
type TestCondType int32

const (
	TestCondTypeGBr TestCondType = iota
	TestCondTypeAMbr
	TestCondTypeIsStat
	TestCondTypeIsCatM
	TestCondTypeRSrp
	TestCondTypeRSrq
	TestCondTypeUlRSrp
	TestCondTypeCQi
	TestCondTypeFiveQi
	TestCondTypeQCi
	TestCondTypeSNssai
)

// TestCondExpression enumerates the comparison operators of a test condition.
type TestCondExpression int32

const (
	TestCondExpressionEqual TestCondExpression = iota
	TestCondExpressionGreaterThan
	TestCondExpressionLessThan
	TestCondExpressionContains
	TestCondExpressionPresent
)

// TestCondValue is the typed test-condition value choice.
type TestCondValue struct {
	ValueInt       *int64
	ValueEnum      *int64
	ValueBool      *bool
	ValueBitString []byte
	ValueOctString []byte
	ValuePrtString *string
	ValueReal      *float64
}

// TestCondInfo is a single test condition: type, operator and optional value.
type TestCondInfo struct {
	TestType  TestCondType
	TestExpr  *TestCondExpression
	TestValue *TestCondValue
}

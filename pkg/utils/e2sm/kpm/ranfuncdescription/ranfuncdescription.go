// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package ranfuncdescription

import (
	"github.com/onosproject/onos-lib-go/pkg/errors"

	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
)

// Description is a builder for KPM RAN function descriptions.
type Description struct {
	shortName             string
	oid                   string
	description           string
	instance              int32
	eventTriggerStyleList []*kpmapi.RicEventTriggerStyleItem
	reportStyleList       []*kpmapi.RicReportStyleItem
}

// NewRANFunctionDescription creates a RAN function description builder with
// the given options.
func NewRANFunctionDescription(options ...func(*Description)) *Description {
	description := &Description{}
	for _, option := range options {
		option(description)
	}
	return description
}

// WithRANFunctionShortName sets the RAN function short name.
func WithRANFunctionShortName(shortName string) func(*Description) {
	return func(description *Description) {
		description.shortName = shortName
	}
}

// WithRANFunctionE2SmOID sets the service model OID.
func WithRANFunctionE2SmOID(oid string) func(*Description) {
	return func(description *Description) {
		description.oid = oid
	}
}

// WithRANFunctionDescription sets the human readable description.
func WithRANFunctionDescription(text string) func(*Description) {
	return func(description *Description) {
		description.description = text
	}
}

// WithRANFunctionInstance sets the RAN function instance.
func WithRANFunctionInstance(instance int32) func(*Description) {
	return func(description *Description) {
		description.instance = instance
	}
}

// WithRICEventTriggerStyleList sets the advertised event trigger styles.
func WithRICEventTriggerStyleList(styles []*kpmapi.RicEventTriggerStyleItem) func(*Description) {
	return func(description *Description) {
		description.eventTriggerStyleList = styles
	}
}

// WithRICReportStyleList sets the advertised report styles.
func WithRICReportStyleList(styles []*kpmapi.RicReportStyleItem) func(*Description) {
	return func(description *Description) {
		description.reportStyleList = styles
	}
}

// Build builds the RAN function description.
func (description *Description) Build() (*kpmapi.RanFunctionDescription, error) {
	if description.shortName == "" || description.oid == "" {
		return nil, errors.New(errors.Invalid, "RAN function name is not complete")
	}
	return &kpmapi.RanFunctionDescription{
		RanFunctionName: kpmapi.RanFunctionName{
			RanFunctionShortName:   description.shortName,
			RanFunctionE2SmOID:     description.oid,
			RanFunctionDescription: description.description,
			RanFunctionInstance:    description.instance,
		},
		RicEventTriggerStyleList: description.eventTriggerStyleList,
		RicReportStyleList:       description.reportStyleList,
	}, nil
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package indication

import (
	"github.com/onosproject/onos-lib-go/pkg/errors"

	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
)

// Header is a builder for KPM indication headers (format 1).
type Header struct {
	colletStartTime   []byte
	fileFormatVersion string
	senderName        string
	senderType        string
	vendorName        string
}

// NewIndicationHeader creates an indication header builder with the given options.
func NewIndicationHeader(options ...func(*Header)) *Header {
	header := &Header{}
	for _, option := range options {
		option(header)
	}
	return header
}

// WithColletStartTime sets the 8-octet collection start time.
func WithColletStartTime(colletStartTime []byte) func(*Header) {
	return func(header *Header) {
		header.colletStartTime = colletStartTime
	}
}

// WithFileFormatVersion sets the optional file format version.
func WithFileFormatVersion(fileFormatVersion string) func(*Header) {
	return func(header *Header) {
		header.fileFormatVersion = fileFormatVersion
	}
}

// WithSenderName sets the optional sender name.
func WithSenderName(senderName string) func(*Header) {
	return func(header *Header) {
		header.senderName = senderName
	}
}

// WithSenderType sets the optional sender type.
func WithSenderType(senderType string) func(*Header) {
	return func(header *Header) {
		header.senderType = senderType
	}
}

// WithVendorName sets the optional vendor name.
func WithVendorName(vendorName string) func(*Header) {
	return func(header *Header) {
		header.vendorName = vendorName
	}
}

// Build builds the indication header.
func (header *Header) Build() (*kpmapi.IndicationHeader, error) {
	if len(header.colletStartTime) != 8 {
		return nil, errors.New(errors.Invalid, "collection start time must be 8 octets")
	}
	return &kpmapi.IndicationHeader{
		IndicationHeaderFormat1: &kpmapi.IndicationHeaderFormat1{
			ColletStartTime:   header.colletStartTime,
			FileFormatVersion: header.fileFormatVersion,
			SenderName:        header.senderName,
			SenderType:        header.senderType,
			VendorName:        header.vendorName,
		},
	}, nil
}

// ToAsn1Bytes builds the header and packs it with the given codec.
func (header *Header) ToAsn1Bytes(codec modelplugins.KpmCodec) ([]byte, error) {
	indicationHeader, err := header.Build()
	if err != nil {
		return nil, err
	}
	return codec.IndicationHeaderToASN1(indicationHeader)
}

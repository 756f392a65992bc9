// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package indication

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicationHeader(t *testing.T) {
	timestamp := make([]byte, 8)
	binary.BigEndian.PutUint64(timestamp, uint64(time.Now().Unix()))

	header, err := NewIndicationHeader(
		WithColletStartTime(timestamp),
		WithSenderName("e2-agent")).
		Build()
	require.NoError(t, err)
	assert.Equal(t, timestamp, header.IndicationHeaderFormat1.ColletStartTime)
	assert.Equal(t, "e2-agent", header.IndicationHeaderFormat1.SenderName)
	// Vendor and file format stay absent by default.
	assert.Equal(t, "", header.IndicationHeaderFormat1.VendorName)
	assert.Equal(t, "", header.IndicationHeaderFormat1.FileFormatVersion)
}

func TestIndicationHeaderRequiresTimestamp(t *testing.T) {
	_, err := NewIndicationHeader().Build()
	assert.Error(t, err)

	_, err = NewIndicationHeader(WithColletStartTime([]byte{1, 2, 3})).Build()
	assert.Error(t, err)
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package ccc

import (
	"context"

	cccapi "github.com/onosproject/e2-agent/api/e2sm/ccc"
	"github.com/onosproject/e2-agent/api/e2sm/common"
)

// RrmPolicyMember identifies one slice member of an RRM policy group.
type RrmPolicyMember struct {
	PlmnID []byte
	Sst    []byte
	Sd     []byte
}

// RrmPolicyRatioGroup is one RRM policy of a configuration request.
type RrmPolicyRatioGroup struct {
	ResourceType      cccapi.ResourceType
	PolicyMembersList []RrmPolicyMember
	MinPrbPolicyRatio *int32
	MaxPrbPolicyRatio *int32
	DedPrbPolicyRatio *int32
}

// CellConfig carries the RRM policies requested for one cell.
type CellConfig struct {
	Cgi                *common.Cgi
	RrmPolicyRatioList []RrmPolicyRatioGroup
}

// ConfigRequest is a node configuration request derived from a control
// request: cells times RRM policy groups.
type ConfigRequest struct {
	Cells []CellConfig
}

// ConfigResponse is the configurator outcome; application is all-or-nothing
// across the request.
type ConfigResponse struct {
	Success bool
}

// Configurator applies operator configuration requests on the node. The
// control service dispatches each admitted control request exactly once and
// awaits the outcome.
type Configurator interface {
	HandleConfigRequest(ctx context.Context, request *ConfigRequest) (*ConfigResponse, error)
}

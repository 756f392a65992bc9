// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"context"
	"sync"

	"github.com/onosproject/e2-agent/pkg/servicemodel/ccc"
)

// nodeConfigurator is the default node configurator backing the CCC service
// model: it records the last applied RRM policies per cell and reports
// success. Integrations replace it with the scheduler-facing configurator.
type nodeConfigurator struct {
	mu       sync.RWMutex
	policies map[uint64][]ccc.RrmPolicyRatioGroup
}

func newNodeConfigurator() *nodeConfigurator {
	return &nodeConfigurator{
		policies: make(map[uint64][]ccc.RrmPolicyRatioGroup),
	}
}

func (c *nodeConfigurator) HandleConfigRequest(ctx context.Context, request *ccc.ConfigRequest) (*ccc.ConfigResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cell := range request.Cells {
		if cell.Cgi == nil || cell.Cgi.NrCgi == nil {
			return &ccc.ConfigResponse{Success: false}, nil
		}
		c.policies[cell.Cgi.NrCgi.NrCellID] = cell.RrmPolicyRatioList
	}
	return &ccc.ConfigResponse{Success: true}, nil
}

// Policies returns the last applied RRM policies of a cell.
func (c *nodeConfigurator) Policies(nrCellID uint64) []ccc.RrmPolicyRatioGroup {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.policies[nrCellID]
}

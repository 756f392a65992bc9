// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package model holds the agent model: the identity of the node the agent
// runs on, its cells and the service model configuration, loaded from a YAML
// model file.
package model

import (
	"io/ioutil"

	ransimtypes "github.com/onosproject/onos-api/go/onos/ransim/types"
	"gopkg.in/yaml.v2"

	"github.com/onosproject/e2-agent/api/e2sm/common"
)

// NodeType distinguishes the functional split the agent serves.
type NodeType string

const (
	// NodeTypeDu marks a gNB-DU node.
	NodeTypeDu NodeType = "gnb-du"
	// NodeTypeCuUp marks a gNB-CU-UP node.
	NodeTypeCuUp NodeType = "gnb-cu-up"
)

// Cell is one cell served by the node.
type Cell struct {
	NCGI         ransimtypes.NCGI `yaml:"ncgi"`
	CellObjectID string           `yaml:"cellObjectID"`
}

// Node is the E2 node identity.
type Node struct {
	Type          NodeType `yaml:"type"`
	GnbID         uint32   `yaml:"gnbID"`
	Cells         []Cell   `yaml:"cells"`
	ServiceModels []string `yaml:"serviceModels"`
}

// Metrics configures the measurement providers.
type Metrics struct {
	RlcHistoryDepth  int `yaml:"rlcHistoryDepth"`
	PdcpHistoryDepth int `yaml:"pdcpHistoryDepth"`
}

// Model is the complete agent model.
type Model struct {
	PlmnID      ransimtypes.PlmnID `yaml:"plmnID"`
	Node        Node               `yaml:"node"`
	Controllers []string           `yaml:"controllers"`
	Metrics     Metrics            `yaml:"metrics"`
}

// Load reads and parses a model file.
func Load(path string) (*Model, error) {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	model := &Model{}
	if err := yaml.Unmarshal(bytes, model); err != nil {
		return nil, err
	}
	return model, nil
}

// PlmnIDBytes returns the 3-octet encoding of the model PLMN id.
func (m *Model) PlmnIDBytes() []byte {
	return ransimtypes.NewUint24(uint32(m.PlmnID)).ToBytes()
}

// CellCgis converts the node cells into decoded NR cell global ids.
func (m *Model) CellCgis() []*common.Cgi {
	cgis := make([]*common.Cgi, 0, len(m.Node.Cells))
	for _, cell := range m.Node.Cells {
		cgis = append(cgis, &common.Cgi{
			NrCgi: &common.NrCgi{
				PlmnID:   &common.PlmnIdentity{Value: m.PlmnIDBytes()},
				NrCellID: uint64(ransimtypes.GetNCI(cell.NCGI)),
			},
		})
	}
	return cgis
}

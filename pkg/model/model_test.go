// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = `
plmnID: 314628
node:
  type: gnb-du
  gnbID: 5152
  cells:
    - ncgi: 84325717505
      cellObjectID: "13842601454c001"
  serviceModels:
    - kpm
    - ccc
controllers:
  - onos-e2t:36421
metrics:
  rlcHistoryDepth: 30
  pdcpHistoryDepth: 10
`

func TestLoadModel(t *testing.T) {
	dir, err := ioutil.TempDir("", "model")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(testModel), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, NodeTypeDu, m.Node.Type)
	assert.Equal(t, uint32(5152), m.Node.GnbID)
	assert.Equal(t, 30, m.Metrics.RlcHistoryDepth)
	require.Len(t, m.Node.Cells, 1)
	assert.Equal(t, []string{"onos-e2t:36421"}, m.Controllers)

	cgis := m.CellCgis()
	require.Len(t, cgis, 1)
	assert.NotNil(t, cgis[0].NrCgi)
	assert.Len(t, m.PlmnIDBytes(), 3)
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := Load("/no/such/model.yaml")
	assert.Error(t, err)
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package registry tracks the service models registered on the agent.
package registry

import (
	"sync"

	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/onosproject/onos-lib-go/pkg/logging"

	"github.com/onosproject/e2-agent/pkg/metrics/provider"
	"github.com/onosproject/e2-agent/pkg/model"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
	"github.com/onosproject/e2-agent/pkg/servicemodel"
	"github.com/onosproject/e2-agent/pkg/store/subscriptions"
)

var log = logging.GetLogger("registry")

// RanFunctionID is a RAN function identifier.
type RanFunctionID int32

// RAN function IDs of the registered service models.
const (
	Kpm RanFunctionID = 1
	Ccc RanFunctionID = 2
)

// ServiceModel carries everything one registered service model needs: its
// identity, its client, the codec registry and the shared stores.
type ServiceModel struct {
	RanFunctionID       RanFunctionID
	ModelName           string
	Revision            int
	OID                 string
	Version             string
	Description         []byte
	Client              servicemodel.Client
	ModelPluginRegistry modelplugins.ModelRegistry
	Node                model.Node
	Model               *model.Model
	Subscriptions       subscriptions.Store
	MeasProvider        provider.MeasProvider
}

// ServiceModelRegistry keeps the inventory of registered service models.
type ServiceModelRegistry struct {
	mu            sync.RWMutex
	serviceModels map[RanFunctionID]*ServiceModel
}

// NewServiceModelRegistry creates an empty service model registry.
func NewServiceModelRegistry() *ServiceModelRegistry {
	return &ServiceModelRegistry{
		serviceModels: make(map[RanFunctionID]*ServiceModel),
	}
}

// RegisterServiceModel registers a service model.
func (r *ServiceModelRegistry) RegisterServiceModel(sm *ServiceModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.serviceModels[sm.RanFunctionID]; ok {
		return errors.New(errors.AlreadyExists, "service model already registered")
	}
	log.Infof("Registering service model %s with RAN function ID %d", sm.ModelName, sm.RanFunctionID)
	r.serviceModels[sm.RanFunctionID] = sm
	return nil
}

// GetServiceModel retrieves a service model by its RAN function ID.
func (r *ServiceModelRegistry) GetServiceModel(id RanFunctionID) (*ServiceModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if sm, ok := r.serviceModels[id]; ok {
		return sm, nil
	}
	return nil, errors.New(errors.NotFound, "service model not found")
}

// ServiceModels lists the registered service models.
func (r *ServiceModelRegistry) ServiceModels() []*ServiceModel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*ServiceModel, 0, len(r.serviceModels))
	for _, sm := range r.serviceModels {
		list = append(list, sm)
	}
	return list
}

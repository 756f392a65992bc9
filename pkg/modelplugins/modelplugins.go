// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package modelplugins keeps the registry of service model codec plugins.
// A plugin owns the ASN.1 PER representation of one service model, looked up
// by its E2SM OID; the engine hands it decoded IEs and receives the packed
// byte strings carried inside E2AP PDUs.
package modelplugins

import (
	"sync"

	"github.com/onosproject/onos-lib-go/pkg/errors"

	cccapi "github.com/onosproject/e2-agent/api/e2sm/ccc"
	kpmapi "github.com/onosproject/e2-agent/api/e2sm/kpm"
)

// OID is a service model object identifier.
type OID string

// ModelPlugin is the base contract of a service model codec.
type ModelPlugin interface {
	ServiceModelOID() OID
}

// KpmCodec converts between decoded E2SM-KPM IEs and their PER byte strings.
type KpmCodec interface {
	ModelPlugin
	ActionDefinitionFromASN1(bytes []byte) (*kpmapi.ActionDefinition, error)
	EventTriggerDefinitionFromASN1(bytes []byte) (*kpmapi.EventTriggerDefinition, error)
	IndicationHeaderToASN1(header *kpmapi.IndicationHeader) ([]byte, error)
	IndicationMessageToASN1(message *kpmapi.IndicationMessage) ([]byte, error)
	RanFunctionDescriptionToASN1(description *kpmapi.RanFunctionDescription) ([]byte, error)
}

// CccCodec converts between decoded E2SM-CCC IEs and their byte strings.
type CccCodec interface {
	ModelPlugin
	ControlHeaderFromASN1(bytes []byte) (*cccapi.ControlHeader, error)
	ControlMessageFromASN1(bytes []byte) (*cccapi.ControlMessage, error)
	ControlOutcomeToASN1(outcome *cccapi.ControlOutcome) ([]byte, error)
}

// ModelRegistry is the registry of codec plugins keyed by OID.
type ModelRegistry interface {
	// RegisterPlugin registers an in-process codec plugin.
	RegisterPlugin(plugin ModelPlugin) error

	// RegisterModelPlugin loads and registers a codec plugin from a shared
	// object file.
	RegisterModelPlugin(moduleName string) error

	// GetPlugin retrieves the plugin registered under the given OID.
	GetPlugin(oid OID) (ModelPlugin, error)
}

// NewModelRegistry creates an empty plugin registry.
func NewModelRegistry() ModelRegistry {
	return &modelRegistry{
		plugins: make(map[OID]ModelPlugin),
	}
}

type modelRegistry struct {
	mu      sync.RWMutex
	plugins map[OID]ModelPlugin
}

func (r *modelRegistry) RegisterPlugin(plugin ModelPlugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oid := plugin.ServiceModelOID()
	if _, ok := r.plugins[oid]; ok {
		return errors.New(errors.AlreadyExists, "model plugin already registered")
	}
	r.plugins[oid] = plugin
	return nil
}

func (r *modelRegistry) GetPlugin(oid OID) (ModelPlugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if plugin, ok := r.plugins[oid]; ok {
		return plugin, nil
	}
	return nil, errors.New(errors.NotFound, "model plugin not found")
}

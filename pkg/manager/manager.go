// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package manager wires the agent together: the model, the codec plugins,
// the measurement providers, the service models and the northbound
// connections.
package manager

import (
	"context"
	"net/http"

	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/onosproject/onos-lib-go/pkg/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/onosproject/e2-agent/pkg/metrics/provider"
	"github.com/onosproject/e2-agent/pkg/model"
	"github.com/onosproject/e2-agent/pkg/modelplugins"
	"github.com/onosproject/e2-agent/pkg/northbound/e2"
	"github.com/onosproject/e2-agent/pkg/servicemodel/ccc"
	"github.com/onosproject/e2-agent/pkg/servicemodel/kpm"
	"github.com/onosproject/e2-agent/pkg/servicemodel/registry"
	"github.com/onosproject/e2-agent/pkg/store/subscriptions"
)

var log = logging.GetLogger("manager")

// Config is the agent manager configuration.
type Config struct {
	ModelPath      string
	MetricsAddress string
	ModelPlugins   []string
}

// Manager is the agent manager.
type Manager struct {
	Config Config

	model         *model.Model
	plugins       modelplugins.ModelRegistry
	registry      *registry.ServiceModelRegistry
	subscriptions subscriptions.Store
	duProvider    *provider.DuProvider
	cuUpProvider  *provider.CuUpProvider
	connections   []*e2.Connection
	cancel        context.CancelFunc
}

// NewManager creates the agent manager.
func NewManager(config Config) *Manager {
	return &Manager{
		Config:        config,
		plugins:       modelplugins.NewModelRegistry(),
		registry:      registry.NewServiceModelRegistry(),
		subscriptions: subscriptions.NewStore(),
	}
}

// Run starts the manager and logs any startup error.
func (m *Manager) Run() {
	log.Info("Starting Manager")
	if err := m.Start(); err != nil {
		log.Fatal("Unable to run Manager", err)
	}
}

// Start loads the model, registers the configured codec plugins, builds the
// providers and service models for the node type and starts the northbound
// side. An inconsistent configuration aborts startup.
func (m *Manager) Start() error {
	agentModel, err := model.Load(m.Config.ModelPath)
	if err != nil {
		return err
	}
	m.model = agentModel

	for _, modulePath := range m.Config.ModelPlugins {
		if err := m.plugins.RegisterModelPlugin(modulePath); err != nil {
			return err
		}
	}

	if err := m.registerServiceModels(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.startMonitoring()
	m.connectControllers(ctx)
	return nil
}

func (m *Manager) registerServiceModels() error {
	agentModel := m.model
	node := agentModel.Node

	switch node.Type {
	case model.NodeTypeDu:
		opts := []provider.DuProviderOption{}
		if agentModel.Metrics.RlcHistoryDepth > 0 {
			opts = append(opts, provider.WithRlcHistoryDepth(agentModel.Metrics.RlcHistoryDepth))
		}
		duProvider, err := provider.NewDuProvider(agentModel.CellCgis(), opts...)
		if err != nil {
			return err
		}
		m.duProvider = duProvider

		kpmSm, err := kpm.NewServiceModel(node, agentModel, m.plugins, m.subscriptions, duProvider)
		if err != nil {
			return err
		}
		if err := m.registry.RegisterServiceModel(&kpmSm); err != nil {
			return err
		}

		cccSm, err := ccc.NewServiceModel(node, agentModel, m.plugins, m.subscriptions, newNodeConfigurator())
		if err != nil {
			// The CCC model is optional on a DU; a missing codec plugin only
			// disables the control service.
			log.Warn("CCC service model not registered", err)
			return nil
		}
		return m.registry.RegisterServiceModel(&cccSm)

	case model.NodeTypeCuUp:
		opts := []provider.CuUpProviderOption{}
		if agentModel.Metrics.PdcpHistoryDepth > 0 {
			opts = append(opts, provider.WithPdcpHistoryDepth(agentModel.Metrics.PdcpHistoryDepth))
		}
		cuUpProvider, err := provider.NewCuUpProvider(opts...)
		if err != nil {
			return err
		}
		m.cuUpProvider = cuUpProvider

		kpmSm, err := kpm.NewServiceModel(node, agentModel, m.plugins, m.subscriptions, cuUpProvider)
		if err != nil {
			return err
		}
		return m.registry.RegisterServiceModel(&kpmSm)
	}
	return errors.New(errors.Invalid, "unknown node type")
}

// startMonitoring exposes the agent metrics endpoint.
func (m *Manager) startMonitoring() {
	if m.Config.MetricsAddress == "" {
		return
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(m.Config.MetricsAddress, mux); err != nil {
			log.Warn(err)
		}
	}()
}

// connectControllers dials every configured RIC termination in the
// background, retrying with backoff.
func (m *Manager) connectControllers(ctx context.Context) {
	for _, address := range m.model.Controllers {
		address := address
		go func() {
			connection, err := e2.Connect(ctx, address)
			if err != nil {
				log.Warnf("Unable to connect to controller %s: %v", address, err)
				return
			}
			m.connections = append(m.connections, connection)
		}()
	}
}

// Model returns the loaded agent model.
func (m *Manager) Model() *model.Model {
	return m.model
}

// ModelRegistry returns the codec plugin registry.
func (m *Manager) ModelRegistry() modelplugins.ModelRegistry {
	return m.plugins
}

// ServiceModelRegistry returns the service model registry.
func (m *Manager) ServiceModelRegistry() *registry.ServiceModelRegistry {
	return m.registry
}

// Subscriptions returns the subscription store.
func (m *Manager) Subscriptions() subscriptions.Store {
	return m.subscriptions
}

// DuProvider returns the DU measurement provider, when the node is a DU.
func (m *Manager) DuProvider() *provider.DuProvider {
	return m.duProvider
}

// CuUpProvider returns the CU-UP measurement provider, when the node is a
// CU-UP.
func (m *Manager) CuUpProvider() *provider.CuUpProvider {
	return m.cuUpProvider
}

// Close stops the manager.
func (m *Manager) Close() {
	log.Info("Closing Manager")
	if m.cancel != nil {
		m.cancel()
	}
	for _, connection := range m.connections {
		if err := connection.Close(); err != nil {
			log.Warn(err)
		}
	}
}

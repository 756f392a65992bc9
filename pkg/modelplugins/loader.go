// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package modelplugins

import (
	"plugin"

	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/onosproject/onos-lib-go/pkg/logging"
)

var log = logging.GetLogger("modelplugins")

// RegisterModelPlugin loads a codec plugin from a shared object file and
// registers it. The plugin must export a ServiceModelPlugin symbol
// implementing ModelPlugin.
func (r *modelRegistry) RegisterModelPlugin(moduleName string) error {
	log.Infof("Loading module %s", moduleName)
	modelPluginModule, err := plugin.Open(moduleName)
	if err != nil {
		log.Warnf("Unable to load module %s", moduleName)
		return err
	}
	symbol, err := modelPluginModule.Lookup("ServiceModelPlugin")
	if err != nil {
		log.Warnf("Unable to find ServiceModelPlugin in module %s", moduleName)
		return err
	}
	modelPlugin, ok := symbol.(ModelPlugin)
	if !ok {
		return errors.New(errors.Invalid, "symbol loaded from module is not a ModelPlugin")
	}
	return r.RegisterPlugin(modelPlugin)
}

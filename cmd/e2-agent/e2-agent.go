// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package main launches the E2 node agent.
package main

import (
	"os"

	"github.com/onosproject/onos-lib-go/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/onosproject/e2-agent/pkg/manager"
)

var log = logging.GetLogger("main")

func main() {
	if err := getRootCommand().Execute(); err != nil {
		println(err)
		os.Exit(1)
	}
}

func getRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "e2-agent",
		Short:        "E2 node agent",
		RunE:         runRootCommand,
		SilenceUsage: true,
	}
	cmd.Flags().String("model", "/etc/e2-agent/model.yaml", "path of the agent model file")
	cmd.Flags().String("metrics-address", ":9090", "listen address of the metrics endpoint")
	cmd.Flags().StringSlice("model-plugin", nil, "paths of the service model codec plugins")
	_ = viper.BindPFlag("model", cmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("metrics-address", cmd.Flags().Lookup("metrics-address"))
	_ = viper.BindPFlag("model-plugin", cmd.Flags().Lookup("model-plugin"))
	return cmd
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	modelPath, err := cmd.Flags().GetString("model")
	if err != nil {
		return err
	}
	metricsAddress, err := cmd.Flags().GetString("metrics-address")
	if err != nil {
		return err
	}
	modelPlugins, err := cmd.Flags().GetStringSlice("model-plugin")
	if err != nil {
		return err
	}

	log.Info("Starting e2-agent")
	mgr := manager.NewManager(manager.Config{
		ModelPath:      modelPath,
		MetricsAddress: metricsAddress,
		ModelPlugins:   modelPlugins,
	})
	mgr.Run()
	select {}
}

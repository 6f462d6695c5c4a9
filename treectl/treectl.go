/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package treectl

import (
	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/deepflowio/rangetree/config"
	"github.com/deepflowio/rangetree/logger"
)

type ModuleId uint16

const (
	TREECTL_DEMO ModuleId = iota
	TREECTL_RUN
	TREECTL_CHECK
	TREECTL_BENCH
	TREECTL_MAX
)

type RegisterCommandLine func() *cobra.Command

var RegisterHandlers = make([]RegisterCommandLine, TREECTL_MAX)

var (
	ConfigPath string
	LogLevel   string

	// Config is loaded before any command runs.
	Config = config.Default()
)

var log = logging.MustGetLogger("treectl")

func RegisterCommand(module ModuleId, cmd RegisterCommandLine) {
	RegisterHandlers[module] = cmd
}

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "rangetree-ctl",
		Short:        "Range Tree Tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}
	root.PersistentFlags().StringVarP(&ConfigPath, "config", "f", "/etc/rangetree.yaml", "Specify config file location")
	root.PersistentFlags().StringVar(&LogLevel, "log-level", "", "error, warning, info or debug, overrides the config file")
	for _, handler := range RegisterHandlers {
		if handler != nil {
			root.AddCommand(handler())
		}
	}
	return root
}

func setup() error {
	c, err := config.Load(ConfigPath)
	if err != nil {
		return err
	}
	if LogLevel != "" {
		c.LogLevel = LogLevel
		if err := c.Validate(); err != nil {
			return err
		}
	}
	Config = c

	if c.LogFile != "" {
		if err := logger.InitLog(c.LogFile, c.LogLevel); err != nil {
			return err
		}
	} else {
		logger.InitConsoleLog()
		if err := logger.SetLevel(c.LogLevel); err != nil {
			return err
		}
	}
	log.Debugf("config %s loaded, log level %s", ConfigPath, logger.GetLevel())
	return nil
}

func prefixLogger(command string) *logger.PrefixLogger {
	l, err := logger.GetPrefixLogger("treectl", "["+command+"]")
	if err != nil {
		return logger.WrapWithPrefixLogger("["+command+"]", log)
	}
	return l
}

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

package main

import (
	"os"

	"github.com/deepflowio/rangetree/treectl"
)

func registerCommand() {
	treectl.RegisterCommand(treectl.TREECTL_DEMO, treectl.DemoCommand)
	treectl.RegisterCommand(treectl.TREECTL_RUN, treectl.RunCommand)
	treectl.RegisterCommand(treectl.TREECTL_CHECK, treectl.CheckCommand)
	treectl.RegisterCommand(treectl.TREECTL_BENCH, treectl.BenchCommand)
}

func main() {
	registerCommand()
	root := treectl.NewRootCommand()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

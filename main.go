// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/linetools/cmd/linetools"

func main() {
	cmd.Execute()
}

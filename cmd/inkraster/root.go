// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import "github.com/spf13/cobra"

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "inkraster",
		Short:   "Deterministic photo-to-ink-raster transform",
		Version: version,
	}
	root.AddCommand(newTransformCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newCalibrateCmd())
	return root
}

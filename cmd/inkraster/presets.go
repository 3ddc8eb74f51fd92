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

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duotone-engine/inkraster/internal/preset"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List known presets and their white coverage targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, cfg := range preset.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s target=%.3f tolerance=%.3f dither=%v\n",
					cfg.ID, cfg.WhiteCoverageTarget, cfg.CoverageTolerance, cfg.Dither)
			}
			return nil
		},
	}
}

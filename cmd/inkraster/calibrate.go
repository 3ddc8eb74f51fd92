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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/duotone-engine/inkraster/internal/calibrate"
	"github.com/duotone-engine/inkraster/internal/ingest"
	"github.com/duotone-engine/inkraster/internal/preset"
	"github.com/duotone-engine/inkraster/internal/rlog"
)

// newCalibrateCmd is an offline tool: it is deliberately absent from the
// server and never touches request handling, since Nelder-Mead's search
// order is not part of the deterministic contract.
func newCalibrateCmd() *cobra.Command {
	var presetID string
	var target float32

	cmd := &cobra.Command{
		Use:   "calibrate <image-dir>",
		Short: "Fit edge/fill weights against a reference image set (offline, non-deterministic)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := os.ReadDir(args[0])
			if err != nil {
				return fmt.Errorf("reading image dir: %w", err)
			}

			var samples []calibrate.Sample
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				path := filepath.Join(args[0], e.Name())
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				rgb, err := ingest.Decode(data)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", path, err)
					continue
				}
				samples = append(samples, calibrate.Sample{RGB: rgb, TargetCoverage: target})
			}
			if len(samples) == 0 {
				return fmt.Errorf("no decodable images found in %s", args[0])
			}

			logger := rlog.New()
			result, err := calibrate.Fit(preset.Resolve(presetID), samples, logger.Writer())
			if err != nil {
				return fmt.Errorf("calibrate: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "edgeWeight=%.4f fillWeight=%.4f cost=%.6f\n",
				result.EdgeWeight, result.FillWeight, result.Cost)
			return nil
		},
	}

	cmd.Flags().StringVar(&presetID, "preset", preset.DefaultID, "base preset to start fitting from")
	cmd.Flags().Float32Var(&target, "target", 0.15, "target white coverage for all samples")
	return cmd
}

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
	"github.com/spf13/cobra"

	"github.com/duotone-engine/inkraster/internal/rest"
	"github.com/duotone-engine/inkraster/internal/rlog"
)

func newServeCmd() *cobra.Command {
	var addr, chroot string
	var setuid int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP transform API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := rlog.New()
			rest.MakeSandbox(logger, chroot, setuid)
			logger.Printf("Listening on %s\n", addr)
			return rest.NewServer(logger).Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address, e.g. :8080")
	cmd.Flags().StringVar(&chroot, "chroot", "", "directory to chroot and chdir to before serving. must be run as root")
	cmd.Flags().IntVar(&setuid, "setuid", -1, "user id to setuid to before serving. must be run as root")
	return cmd
}

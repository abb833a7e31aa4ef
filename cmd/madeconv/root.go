/*
 * root.go, part of made.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "madeconv",
		Short: "Convert atomic structure text between XYZ, POSCAR and namelist input",
		Long: `madeconv converts atomic structures between the XYZ and POSCAR formats, and
parses Fortran namelist input (as used by Quantum ESPRESSO) into JSON or YAML.

Input files ending in .gz or .zst are decompressed, and output files with those
extensions are compressed. A missing input file, or "-", means the standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.AddCommand(newVersionCmd())
	root.AddCommand(newXYZ2POSCARCmd())
	root.AddCommand(newPOSCAR2XYZCmd())
	root.AddCommand(newCountCmd())
	root.AddCommand(newNamelistCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of madeconv",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "madeconv v%s\n", version)
		},
	}
}

// inputName returns the input file given in args, or "" for the standard input.
func inputName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

/*
 * convert.go, part of made.
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
	"log"

	"github.com/rmera/made/poscar"
	"github.com/rmera/made/xyz"
	"github.com/spf13/cobra"
)

type convertParams struct {
	output string
	header bool
	title  string
	wrap   bool
	bottom bool
}

func newXYZ2POSCARCmd() *cobra.Command {
	params := &convertParams{}
	cmd := &cobra.Command{
		Use:   "xyz2poscar [file]",
		Short: "Convert XYZ atom lines to a POSCAR file",
		Long: `xyz2poscar converts XYZ atom lines to POSCAR. As XYZ has no lattice, the
identity cell is written. Atoms are grouped by element, in the order the
elements first appear.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(inputName(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			var out string
			if params.header {
				comment, B, err := xyz.Read(text)
				if err != nil {
					return err
				}
				title := params.title
				if title == "" {
					title = comment
				}
				out, err = poscar.Write(B, title)
				if err != nil {
					return err
				}
			} else if params.title != "" {
				B, err := xyz.ToBasisConfig(text)
				if err != nil {
					return err
				}
				out, err = poscar.Write(B, params.title)
				if err != nil {
					return err
				}
			} else {
				out, err = poscar.FromXYZ(text)
				if err != nil {
					return err
				}
			}
			return writeOutput(params.output, out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&params.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&params.header, "header", false, "the input is a complete XYZ file, with atom number and comment lines")
	cmd.Flags().StringVarP(&params.title, "title", "t", "", "title line (default: the XYZ comment with --header, the formula otherwise)")
	return cmd
}

func newPOSCAR2XYZCmd() *cobra.Command {
	params := &convertParams{}
	cmd := &cobra.Command{
		Use:   "poscar2xyz [file]",
		Short: "Convert a POSCAR file to a complete XYZ file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(inputName(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			title, B, err := poscar.Read(text)
			if err != nil {
				return err
			}
			if params.title != "" {
				title = params.title
			}
			if params.bottom {
				if B, err = B.TranslateToBottom(); err != nil {
					return err
				}
			}
			if params.wrap {
				if B, err = B.WrapToUnitCell(); err != nil {
					return err
				}
			}
			out, err := xyz.Write(B, title)
			if err != nil {
				return err
			}
			return writeOutput(params.output, out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&params.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&params.title, "title", "t", "", "comment line (default: the POSCAR title)")
	cmd.Flags().BoolVar(&params.bottom, "bottom", false, "translate the atoms along c so the lowest one is at the bottom of the cell")
	cmd.Flags().BoolVar(&params.wrap, "wrap", false, "move every atom into the cell before writing")
	return cmd
}

func newCountCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Print the number of atom lines in XYZ atom lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := inputName(args)
			text, err := readInput(name, cmd.InOrStdin())
			if err != nil {
				return err
			}
			n := xyz.AtomsCount(text)
			if check {
				if _, err := xyz.ToBasisConfig(text); err != nil {
					log.Printf("%s: %v", displayName(name), err)
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "also warn if a line is not a valid atom record")
	return cmd
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}

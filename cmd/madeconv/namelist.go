/*
 * namelist.go, part of made.
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
	"encoding/json"
	"fmt"
	"log"

	"github.com/rmera/made/namelist"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type namelistParams struct {
	output       string
	format       string
	requireCards bool
}

func newNamelistCmd() *cobra.Command {
	params := &namelistParams{}
	cmd := &cobra.Command{
		Use:   "namelist [file]",
		Short: "Parse Fortran namelist input and print it as JSON or YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := inputName(args)
			text, err := readInput(name, cmd.InOrStdin())
			if err != nil {
				return err
			}
			P := namelist.NewParser()
			P.RequireCards = params.requireCards
			T, err := P.Parse(text)
			if err != nil {
				return err
			}
			if T.Cards == "" {
				log.Printf("%s: no cards after the namelists", displayName(name))
			}
			out, err := renderTable(T, params.format)
			if err != nil {
				return err
			}
			return writeOutput(params.output, out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&params.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&params.format, "format", "f", "json", "output format, json or yaml")
	cmd.Flags().BoolVar(&params.requireCards, "require-cards", false, "fail if there is no text after the namelists")
	return cmd
}

func renderTable(T *namelist.Table, format string) (string, error) {
	switch format {
	case "json":
		b, err := json.MarshalIndent(T, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case "yaml", "yml":
		b, err := yaml.Marshal(T)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

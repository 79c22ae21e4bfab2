/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/fdsmesh/InputParameters"
	"github.com/notargets/fdsmesh/mesh"
	"github.com/notargets/fdsmesh/types"
)

// CellSizeCmd suggests a cell size from the fire characteristic diameter
var CellSizeCmd = &cobra.Command{
	Use:   "cellsize",
	Short: "Suggest a cell size from the heat release rate of the fire",
	Long: `
Computes the characteristic fire diameter D* and the cell size resolving it
with the requested number of cells. With a case file and a mesh ID, also
gives the cell counts of that mesh at the suggested size.

fdsmesh cellsize --hrr 2000 --ncell 10 -I case.yaml --mesh room`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			p     mesh.FireParams
			s     mesh.CellSizeSuggestion
			ncell int
		)
		hrr, _ := cmd.Flags().GetFloat64("hrr")
		p = mesh.DefaultFireParams(hrr)
		p.Density, _ = cmd.Flags().GetFloat64("density")
		p.Cp, _ = cmd.Flags().GetFloat64("cp")
		p.TAmbient, _ = cmd.Flags().GetFloat64("tAmbient")
		p.G, _ = cmd.Flags().GetFloat64("g")
		ncell, _ = cmd.Flags().GetInt("ncell")
		if s, err = mesh.SuggestCellSize(p, ncell); err != nil {
			return
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%8.3f\t\t= D* (m)\n", s.DStar)
		fmt.Fprintf(out, "%8.3f\t\t= coarse cell size, D*/4 (m)\n", s.MaxCS)
		fmt.Fprintf(out, "%8.3f\t\t= fine cell size, D*/16 (m)\n", s.MinCS)
		fmt.Fprintf(out, "%8.3f\t\t= cell size, D*/%d (m)\n", s.DesiredCS, ncell)

		meshID, _ := cmd.Flags().GetString("mesh")
		if len(meshID) == 0 {
			return
		}
		var (
			ip  *InputParameters.CaseParameters
			mp  *InputParameters.MeshParameters
			cfg *mesh.Config
			ijk types.IJK
		)
		if ip, err = readCase(cmd); err != nil {
			return
		}
		if mp, err = ip.Find(meshID); err != nil {
			return
		}
		if cfg, err = loadEngineConfig(); err != nil {
			return
		}
		defer func() { _ = cfg.Logger.Sync() }()
		cs := [3]float64{s.DesiredCS, s.DesiredCS, s.DesiredCS}
		if ijk, err = cfg.IJKFromDesiredCS(types.XB(mp.XB), cs, ip.Poisson); err != nil {
			return
		}
		fmt.Fprintf(out, "IJK=%d,%d,%d\t= mesh %s, %d cells\n", ijk[0], ijk[1], ijk[2], mp.ID, ijk.Count())
		return
	},
}

func init() {
	def := mesh.DefaultFireParams(0)
	rootCmd.AddCommand(CellSizeCmd)
	addInputFlag(CellSizeCmd)
	CellSizeCmd.Flags().Float64("hrr", 0, "heat release rate of the fire (kW)")
	CellSizeCmd.Flags().Int("ncell", 10, "number of cells across D*")
	CellSizeCmd.Flags().Float64("density", def.Density, "ambient air density (kg/m³)")
	CellSizeCmd.Flags().Float64("cp", def.Cp, "ambient air specific heat (kJ/(kg·K))")
	CellSizeCmd.Flags().Float64("tAmbient", def.TAmbient, "ambient temperature (°C)")
	CellSizeCmd.Flags().Float64("g", def.G, "gravitational acceleration (m/s²)")
	CellSizeCmd.Flags().String("mesh", "", "ID of a case mesh to size")
	_ = CellSizeCmd.MarkFlagRequired("hrr")
}

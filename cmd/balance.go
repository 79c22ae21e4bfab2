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
)

// BalanceCmd distributes the expanded meshes over MPI processes
var BalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Distribute the expanded meshes over MPI processes",
	Long: `
Expands the case meshes, assigns them to MPI processes so that the cell
counts per process are as even as possible and reports the load spread and
the mesh interfaces cut between processes. With -o, writes the MESH
namelists with their MPI_PROCESS.

fdsmesh balance -I case.yaml -n 8 -o case.fds`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip     *InputParameters.CaseParameters
			cfg    *mesh.Config
			geoms  []mesh.Geometry
			meshes []mesh.MeshSpec
			br     *mesh.BalanceReport
			nproc  int
		)
		if ip, err = readCase(cmd); err != nil {
			return
		}
		if cfg, err = loadEngineConfig(); err != nil {
			return
		}
		defer func() { _ = cfg.Logger.Sync() }()
		nproc = ip.MPIProcesses
		if cmd.Flags().Changed("nproc") || nproc == 0 {
			nproc, _ = cmd.Flags().GetInt("nproc")
		}
		if geoms, err = expandCase(cfg, ip); err != nil {
			return
		}
		for _, g := range geoms {
			meshes = append(meshes, g.Meshes()...)
		}
		if br, err = cfg.Balance(meshes, nproc, mesh.CellCountCost); err != nil {
			return
		}
		out := cmd.OutOrStdout()
		for p, bin := range br.Bins {
			ids := make([]string, len(bin.Payloads))
			for n, i := range bin.Payloads {
				ids[n] = meshes[i].ID
			}
			fmt.Fprintf(out, "Process[%d] = %8.0f cells %v\n", p, bin.Weight, ids)
		}
		fmt.Fprintf(out, "%8.0f\t\t= Mean load\n", br.MeanLoad)
		fmt.Fprintf(out, "%8.0f\t\t= Max load\n", br.MaxLoad)
		fmt.Fprintf(out, "%8.0f\t\t= Min load\n", br.MinLoad)
		fmt.Fprintf(out, "%8.3f\t\t= Imbalance\n", br.Imbalance)
		fmt.Fprintf(out, "[%d]\t\t\t= Cut interfaces\n", br.CutInterfaces)
		fmt.Fprintf(out, "%8.0f\t\t= Communication volume (cells)\n", br.CommVolume)
		if path, _ := cmd.Flags().GetString("output"); len(path) == 0 {
			return
		}
		return writeCase(cmd, ip, geoms, br.Process)
	},
}

func init() {
	rootCmd.AddCommand(BalanceCmd)
	addInputFlag(BalanceCmd)
	BalanceCmd.Flags().IntP("nproc", "n", 1, "number of MPI processes (default from the case file)")
	BalanceCmd.Flags().StringP("output", "o", "", "output file for the MESH namelists with MPI_PROCESS")
}

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
	"github.com/notargets/fdsmesh/fds"
	"github.com/notargets/fdsmesh/mesh"
)

// AlignCmd aligns one mesh of the case to a reference mesh
var AlignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align the cells of a mesh to those of a reference mesh",
	Long: `
Resizes and moves a mesh so that each of its cells is covered by a whole
number of cells of the reference mesh where the two meet. The reference box
and cell size are protected unless told otherwise.

fdsmesh align -I case.yaml --ref fine --mesh coarse`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip      *InputParameters.CaseParameters
			cfg     *mesh.Config
			req     mesh.AlignmentRequest
			res     mesh.AlignmentResult
			refID   string
			meshID  string
			poisson bool
		)
		if ip, err = readCase(cmd); err != nil {
			return
		}
		if cfg, err = loadEngineConfig(); err != nil {
			return
		}
		defer func() { _ = cfg.Logger.Sync() }()
		refID, _ = cmd.Flags().GetString("ref")
		meshID, _ = cmd.Flags().GetString("mesh")
		poisson = ip.Poisson
		if cmd.Flags().Changed("poisson") {
			poisson, _ = cmd.Flags().GetBool("poisson")
		}
		if req.Ref, err = lookupMesh(cfg, ip, refID, poisson); err != nil {
			return
		}
		if req.Mesh, err = lookupMesh(cfg, ip, meshID, poisson); err != nil {
			return
		}
		req.Poisson = poisson
		req.ProtectRXB, _ = cmd.Flags().GetBool("protect-rxb")
		req.ProtectRCS, _ = cmd.Flags().GetBool("protect-rcs")
		if res, err = cfg.Align(req); err != nil {
			return
		}
		out := cmd.OutOrStdout()
		switch {
		case res.FarApart:
			fmt.Fprintf(out, "Alignment: %s\n", mesh.FarApartMessage)
		case len(res.Messages) == 0:
			fmt.Fprintln(out, "Alignment: already aligned")
		default:
			fmt.Fprintf(out, "Alignment: %s\n", res.Message())
		}
		for _, m := range []mesh.MeshSpec{res.Ref, res.Mesh} {
			var (
				g   mesh.Geometry
				s   string
				fyi string
			)
			if g, err = cfg.MeshGeometry(mesh.MeshInput{Mesh: m}); err != nil {
				return
			}
			if mp, ferr := ip.Find(m.ID); ferr == nil {
				fyi = mp.FYI
			}
			if s, err = fds.MeshString(g, fyi, nil); err != nil {
				return
			}
			fmt.Fprintln(out, s)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(AlignCmd)
	addInputFlag(AlignCmd)
	AlignCmd.Flags().String("ref", "", "ID of the reference mesh")
	AlignCmd.Flags().String("mesh", "", "ID of the mesh to align")
	AlignCmd.Flags().Bool("poisson", false, "keep y and z cell counts Poisson friendly (default from the case file)")
	AlignCmd.Flags().Bool("protect-rxb", true, "never move the reference mesh box")
	AlignCmd.Flags().Bool("protect-rcs", true, "never change the reference mesh cell size")
	_ = AlignCmd.MarkFlagRequired("ref")
	_ = AlignCmd.MarkFlagRequired("mesh")
}

func lookupMesh(cfg *mesh.Config, ip *InputParameters.CaseParameters, id string,
	poisson bool) (m mesh.MeshSpec, err error) {
	var mp *InputParameters.MeshParameters
	if mp, err = ip.Find(id); err != nil {
		return
	}
	return mp.MeshSpec(cfg, poisson)
}

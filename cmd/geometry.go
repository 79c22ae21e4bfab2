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
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/fdsmesh/InputParameters"
	"github.com/notargets/fdsmesh/fds"
	"github.com/notargets/fdsmesh/mesh"
	"github.com/notargets/fdsmesh/utils"
)

// GeometryCmd expands the case meshes into FDS MESH namelists
var GeometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Expand the case meshes into FDS MESH namelists",
	Long: `
Replicates (MULT) and splits every mesh of the case file, then writes the
resulting MESH namelists with their cell count, cell size, aspect ratio and
Poisson diagnostics.

fdsmesh geometry -I case.yaml -o case.fds`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip    *InputParameters.CaseParameters
			cfg   *mesh.Config
			geoms []mesh.Geometry
		)
		if ip, err = readCase(cmd); err != nil {
			return
		}
		if cfg, err = loadEngineConfig(); err != nil {
			return
		}
		defer func() { _ = cfg.Logger.Sync() }()
		if geoms, err = expandCase(cfg, ip); err != nil {
			return
		}
		return writeCase(cmd, ip, geoms, nil)
	},
}

func init() {
	rootCmd.AddCommand(GeometryCmd)
	addInputFlag(GeometryCmd)
	GeometryCmd.Flags().StringP("output", "o", "", "output file, .zst for compressed output, stdout when empty")
}

func expandCase(cfg *mesh.Config, ip *InputParameters.CaseParameters) (geoms []mesh.Geometry, err error) {
	var inputs []mesh.MeshInput
	if inputs, err = ip.MeshInputs(cfg); err != nil {
		return
	}
	if geoms, err = cfg.ExpandAll(inputs); err != nil {
		return
	}
	for n, g := range geoms {
		cfg.Logger.Info("mesh expanded",
			zap.String("id", ip.Meshes[n].ID),
			zap.Int("meshes", g.NMesh),
			zap.Int("cells", g.NCellTot),
			zap.String("poisson", g.HasGoodIJK))
	}
	cfg.Logger.Debug("memory", zap.Stringer("usage", utils.GetMemUsage()))
	return
}

/*
writeCase writes HEAD, the MESH namelists of every geometry and TAIL.
process, when not nil, holds the MPI process of each mesh in expansion order.
*/
func writeCase(cmd *cobra.Command, ip *InputParameters.CaseParameters, geoms []mesh.Geometry,
	process []int) (err error) {
	var (
		out    io.Writer = cmd.OutOrStdout()
		path   string
		chid   = "fdsmesh"
		offset int
	)
	if path, err = cmd.Flags().GetString("output"); err != nil {
		return
	}
	if path != "" && path != "-" {
		var wc io.WriteCloser
		if wc, err = fds.Create(path); err != nil {
			return
		}
		defer func() {
			if cerr := wc.Close(); err == nil {
				err = cerr
			}
		}()
		out = wc
		chid = strings.SplitN(filepath.Base(path), ".", 2)[0]
	}
	fw := fds.NewWriter(out)
	if err = fw.WriteHead(chid, ip.Title); err != nil {
		return
	}
	for n, g := range geoms {
		var proc []int
		if process != nil {
			proc = process[offset : offset+g.NMesh]
		}
		if err = fw.WriteGeometry(g, ip.Meshes[n].FYI, proc); err != nil {
			return
		}
		offset += g.NMesh
	}
	return fw.WriteTail()
}

package InputParameters

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/notargets/fdsmesh/mesh"
	"github.com/notargets/fdsmesh/types"
)

//go:embed case.schema.json
var caseSchemaText string

var caseSchema = jsonschema.MustCompileString("case.schema.json", caseSchemaText)

// Parameters obtained from the YAML case file
type CaseParameters struct {
	Title        string           `json:"Title"`
	Poisson      bool             `json:"Poisson"`
	MPIProcesses int              `json:"MPIProcesses"`
	Meshes       []MeshParameters `json:"Meshes"`
}

type MeshParameters struct {
	ID          string          `json:"ID"`
	FYI         string          `json:"FYI,omitempty"`
	IJK         [3]int          `json:"IJK"`
	XB          [6]float64      `json:"XB"`
	CellSize    *[3]float64     `json:"CellSize,omitempty"` // replaces IJK when set
	NSplits     [3]int          `json:"NSplits"`
	SplitExport bool            `json:"SplitExport"`
	Mult        *MultParameters `json:"MULT,omitempty"`
}

// MultParameters mirror the FDS MULT namelist
type MultParameters struct {
	ID         string      `json:"ID"`
	DX         float64     `json:"DX"`
	DY         float64     `json:"DY"`
	DZ         float64     `json:"DZ"`
	DX0        float64     `json:"DX0"`
	DY0        float64     `json:"DY0"`
	DZ0        float64     `json:"DZ0"`
	DXB        *[6]float64 `json:"DXB,omitempty"`
	ILower     int         `json:"I_LOWER"`
	IUpper     int         `json:"I_UPPER"`
	JLower     int         `json:"J_LOWER"`
	JUpper     int         `json:"J_UPPER"`
	KLower     int         `json:"K_LOWER"`
	KUpper     int         `json:"K_UPPER"`
	ILowerSkip *int        `json:"I_LOWER_SKIP,omitempty"`
	IUpperSkip *int        `json:"I_UPPER_SKIP,omitempty"`
	JLowerSkip *int        `json:"J_LOWER_SKIP,omitempty"`
	JUpperSkip *int        `json:"J_UPPER_SKIP,omitempty"`
	KLowerSkip *int        `json:"K_LOWER_SKIP,omitempty"`
	KUpperSkip *int        `json:"K_UPPER_SKIP,omitempty"`
}

// Parse validates the YAML document against the case schema and decodes it
func (ip *CaseParameters) Parse(data []byte) (err error) {
	var (
		jsonData []byte
		doc      any
	)
	if jsonData, err = yaml.YAMLToJSON(data); err != nil {
		return fmt.Errorf("case file is not valid YAML: %w", err)
	}
	if err = json.Unmarshal(jsonData, &doc); err != nil {
		return fmt.Errorf("case file is not a valid document: %w", err)
	}
	if err = caseSchema.Validate(doc); err != nil {
		return fmt.Errorf("case file does not match the schema: %w", err)
	}
	return yaml.Unmarshal(data, ip)
}

func ReadFile(path string) (ip *CaseParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	ip = &CaseParameters{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return
}

func (ip *CaseParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "%v\t\t\t= Poisson\n", ip.Poisson)
	fmt.Fprintf(w, "[%d]\t\t\t= MPI Processes\n", ip.MPIProcesses)
	for _, mp := range ip.Meshes {
		var extra []string
		if mp.CellSize != nil {
			extra = append(extra, fmt.Sprintf("CellSize=%v", *mp.CellSize))
		}
		if mp.SplitExport {
			extra = append(extra, fmt.Sprintf("NSplits=%v", mp.NSplits))
		}
		if mp.Mult != nil {
			extra = append(extra, "MULT")
		}
		fmt.Fprintf(w, "Mesh[%s] IJK=%v XB=%v %s\n", mp.ID, mp.IJK, mp.XB, strings.Join(extra, " "))
	}
}

// Find returns the mesh parameters with the given ID
func (ip *CaseParameters) Find(id string) (mp *MeshParameters, err error) {
	for n := range ip.Meshes {
		if ip.Meshes[n].ID == id {
			return &ip.Meshes[n], nil
		}
	}
	return nil, fmt.Errorf("no mesh with ID %q in case %q", id, ip.Title)
}

// MeshInputs converts every mesh, in file order; IDs must be unique
func (ip *CaseParameters) MeshInputs(cfg *mesh.Config) (inputs []mesh.MeshInput, err error) {
	var seen = make(map[string]bool, len(ip.Meshes))
	inputs = make([]mesh.MeshInput, len(ip.Meshes))
	for n, mp := range ip.Meshes {
		if seen[mp.ID] {
			return nil, fmt.Errorf("duplicate mesh ID %q", mp.ID)
		}
		seen[mp.ID] = true
		if inputs[n], err = mp.MeshInput(cfg, ip.Poisson); err != nil {
			return nil, err
		}
	}
	return
}

func (mp MeshParameters) MeshSpec(cfg *mesh.Config, poisson bool) (m mesh.MeshSpec, err error) {
	m = mesh.NewMeshSpec(mp.ID, types.IJK(mp.IJK), types.XB(mp.XB))
	if mp.CellSize != nil {
		if m.IJK, err = cfg.IJKFromDesiredCS(m.XB, *mp.CellSize, poisson); err != nil {
			return
		}
	}
	err = m.Validate()
	return
}

func (mp MeshParameters) MeshInput(cfg *mesh.Config, poisson bool) (in mesh.MeshInput, err error) {
	if in.Mesh, err = mp.MeshSpec(cfg, poisson); err != nil {
		return
	}
	in.NSplits = mesh.SplitPlan(mp.NSplits)
	in.SplitExport = mp.SplitExport
	if mp.Mult != nil {
		in.Mult = mp.Mult.Multiplier()
	}
	return
}

func (mu *MultParameters) Multiplier() *mesh.Multiplier {
	skip := func(lo, hi *int) *mesh.Range {
		if lo == nil || hi == nil {
			return nil
		}
		return &mesh.Range{Lower: *lo, Upper: *hi}
	}
	return &mesh.Multiplier{
		ID:     mu.ID,
		Delta:  [3]float64{mu.DX, mu.DY, mu.DZ},
		Delta0: [3]float64{mu.DX0, mu.DY0, mu.DZ0},
		DXB:    mu.DXB,
		Bounds: [3]mesh.Range{
			{Lower: mu.ILower, Upper: mu.IUpper},
			{Lower: mu.JLower, Upper: mu.JUpper},
			{Lower: mu.KLower, Upper: mu.KUpper},
		},
		Skip: [3]*mesh.Range{
			skip(mu.ILowerSkip, mu.IUpperSkip),
			skip(mu.JLowerSkip, mu.JUpperSkip),
			skip(mu.KLowerSkip, mu.KUpperSkip),
		},
	}
}

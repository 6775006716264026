// Command fluxion builds FBA model structures from a CSV reaction table.
// It exposes the library pipeline on the command line: expand a wide table
// into the long format, or assemble and export a solver-ready LP problem.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/fluxion/lp"
	"github.com/katalvlaran/fluxion/model"
	"github.com/katalvlaran/fluxion/sparse"
	"github.com/katalvlaran/fluxion/tabular"
)

const version = "0.1.0"

// CLI defines the command-line interface.
var CLI struct {
	Workers int `name:"workers" short:"w" default:"1" help:"Parallel workers for equation parsing (1 = serial)."`

	Expand  ExpandCmd  `cmd:"" help:"Expand a reaction table into the long-format stoichiometry table."`
	LP      LPCmd      `cmd:"" name:"lp" help:"Assemble a reaction table into an LP problem (MPS or JSON)."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

// ExpandCmd prints the long-format tables for a reaction table.
type ExpandCmd struct {
	Model     string `arg:"" help:"Reaction table CSV (abbreviation, equation, lowbnd, uppbnd, obj_coef)." type:"existingfile"`
	Reactions bool   `help:"Print the equation-free reaction table instead of the stoichiometry table."`
}

func (c *ExpandCmd) Run() error {
	ex, err := expandFile(c.Model)
	if err != nil {
		return err
	}
	if c.Reactions {
		return tabular.WriteReactions(os.Stdout, ex)
	}

	return tabular.WriteStoich(os.Stdout, ex)
}

// LPCmd assembles the constraint system and encodes it.
type LPCmd struct {
	Model  string `arg:"" help:"Reaction table CSV." type:"existingfile"`
	Format string `enum:"mps,json" default:"mps" help:"Output encoding: mps or json."`
	Name   string `default:"FBA" help:"Model name for the MPS NAME record."`
}

func (c *LPCmd) Run() error {
	ex, err := expandFile(c.Model)
	if err != nil {
		return err
	}
	prob, err := lp.Assemble(ex)
	if err != nil {
		return err
	}

	if c.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(jsonProblem(prob))
	}

	return lp.WriteMPS(os.Stdout, c.Name, prob)
}

// VersionCmd prints the build version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println("fluxion", version)

	return nil
}

// expandFile reads and expands one reaction table.
func expandFile(path string) (*model.Expanded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rxns, err := tabular.Read(f)
	if err != nil {
		return nil, err
	}

	opts := []model.Option{}
	if CLI.Workers > 1 {
		opts = append(opts, model.WithParallelism(CLI.Workers))
	}

	return model.Expand(rxns, opts...)
}

// problemJSON is the JSON shape of an assembled problem; the sparse matrix
// travels as explicit column-major triplets.
type problemJSON struct {
	Rows       []string       `json:"rows"`
	Cols       []string       `json:"cols"`
	Entries    []sparse.Entry `json:"entries"`
	Obj        []float64      `json:"obj"`
	LB         []float64      `json:"lb"`
	UB         []float64      `json:"ub"`
	RHS        []float64      `json:"rhs"`
	Sense      string         `json:"sense"`
	ModelSense string         `json:"modelsense"`
}

func jsonProblem(p *lp.Problem) problemJSON {
	return problemJSON{
		Rows:       p.RowNames,
		Cols:       p.ColNames,
		Entries:    p.A.Entries(),
		Obj:        p.Obj,
		LB:         p.LB,
		UB:         p.UB,
		RHS:        p.RHS,
		Sense:      "E",
		ModelSense: "max",
	}
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("fluxion"),
		kong.Description("FBA model construction: reaction tables to LP problems."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

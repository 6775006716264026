// Package model — the Expand pipeline.
//
// Stage 1 (Validate): schema checks over the whole table, before any parse.
// Stage 2 (Parse):    per-reaction split + tokenize, serial or fanned out.
// Stage 3 (Finalize): concatenate rows in table order, collect metabolites.
//
// Complexity: O(total equation length) parsing + O(m log m) metabolite sort,
// m = distinct metabolite count. Memory is linear in total term count.

package model

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/fluxion/equation"
)

// Side directions: stoichiometric sign convention for the steady-state
// system S·v = 0 (consumption negative, production positive).
const (
	substrateDirection = -1.0
	productDirection   = +1.0
)

// parsed is the per-reaction expansion result, kept in an order-indexed slot
// so parallel execution reproduces serial output.
type parsed struct {
	entries    []StoichEntry
	reversible bool
}

// Expand converts the wide reaction table into the long-format model.
//
// Errors: ErrNoReactions, ErrEmptyAbbrev, ErrDuplicateAbbrev,
// ErrCompartmentPrefix before parsing; equation.ErrNoArrow,
// equation.ErrMultipleArrows, equation.ErrMalformedTerm during parsing, each
// wrapped with the owning abbreviation. On any error no partial model is
// returned.
func Expand(rxns []Reaction, opts ...Option) (*Expanded, error) {
	o := gatherOptions(opts)

	// Stage 1: schema validation across the whole batch.
	if err := validate(rxns); err != nil {
		return nil, err
	}

	// Stage 2: per-reaction parsing.
	results := make([]parsed, len(rxns))
	if o.parallelism > 1 {
		if err := parseAll(rxns, results, o); err != nil {
			return nil, err
		}
	} else {
		for i := range rxns {
			p, err := parseReaction(rxns[i], o.eqOpts)
			if err != nil {
				return nil, err
			}
			results[i] = p
		}
	}

	// Stage 3: concatenate in table order and collect distinct metabolites.
	total := 0
	for i := range results {
		total += len(results[i].entries)
	}

	ex := &Expanded{
		Stoich:    make([]StoichEntry, 0, total),
		Reactions: make([]ReactionInfo, 0, len(rxns)),
	}
	seen := make(map[string]struct{})
	for i, r := range rxns {
		ex.Stoich = append(ex.Stoich, results[i].entries...)
		ex.Reactions = append(ex.Reactions, ReactionInfo{
			Abbreviation: r.Abbreviation,
			LowBnd:       r.LowBnd,
			UppBnd:       r.UppBnd,
			ObjCoef:      r.ObjCoef,
			Reversible:   results[i].reversible,
			Extra:        r.Extra,
		})
		for _, e := range results[i].entries {
			seen[e.Metabolite] = struct{}{}
		}
	}

	ex.Metabolites = make([]string, 0, len(seen))
	for met := range seen {
		ex.Metabolites = append(ex.Metabolites, met)
	}
	sort.Strings(ex.Metabolites)

	return ex, nil
}

// validate runs every schema precondition before any parsing work.
func validate(rxns []Reaction) error {
	if len(rxns) == 0 {
		return fmt.Errorf("Expand: %w", ErrNoReactions)
	}

	seen := make(map[string]struct{}, len(rxns))
	for i := range rxns {
		abbrev := rxns[i].Abbreviation
		if abbrev == "" {
			return fmt.Errorf("Expand: row %d: %w", i, ErrEmptyAbbrev)
		}
		if _, dup := seen[abbrev]; dup {
			return fmt.Errorf("Expand: %q: %w", abbrev, ErrDuplicateAbbrev)
		}
		seen[abbrev] = struct{}{}

		if strings.HasPrefix(strings.TrimSpace(rxns[i].Equation), "[") {
			return fmt.Errorf("Expand: %q: equation %q: %w",
				abbrev, rxns[i].Equation, ErrCompartmentPrefix)
		}
	}

	return nil
}

// parseReaction expands one reaction: split at the arrow, tokenize both
// sides, sign substrate terms negative and product terms positive.
func parseReaction(r Reaction, eqOpts []equation.Option) (parsed, error) {
	sides, err := equation.Split(r.Equation, eqOpts...)
	if err != nil {
		return parsed{}, fmt.Errorf("Expand: reaction %q: %w", r.Abbreviation, err)
	}

	subs, err := equation.ParseSide(sides.Substrates, eqOpts...)
	if err != nil {
		return parsed{}, fmt.Errorf("Expand: reaction %q: %w", r.Abbreviation, err)
	}
	prods, err := equation.ParseSide(sides.Products, eqOpts...)
	if err != nil {
		return parsed{}, fmt.Errorf("Expand: reaction %q: %w", r.Abbreviation, err)
	}

	p := parsed{
		entries:    make([]StoichEntry, 0, len(subs)+len(prods)),
		reversible: sides.Reversible,
	}
	for _, t := range subs {
		p.entries = append(p.entries, StoichEntry{
			Abbreviation: r.Abbreviation,
			Metabolite:   t.Metabolite,
			Coefficient:  t.Coefficient * substrateDirection,
		})
	}
	for _, t := range prods {
		p.entries = append(p.entries, StoichEntry{
			Abbreviation: r.Abbreviation,
			Metabolite:   t.Metabolite,
			Coefficient:  t.Coefficient * productDirection,
		})
	}

	return p, nil
}

// parseAll fans parseReaction out over o.parallelism workers. Workers pull
// indices from a shared channel and write into order-indexed slots; the
// first error (by table order) wins, matching serial behavior.
func parseAll(rxns []Reaction, results []parsed, o options) error {
	indices := make(chan int)
	errs := make([]error, len(rxns))

	var wg sync.WaitGroup
	wg.Add(o.parallelism)
	for w := 0; w < o.parallelism; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i], errs[i] = parseReaction(rxns[i], o.eqOpts)
			}
		}()
	}

	for i := range rxns {
		indices <- i
	}
	close(indices)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

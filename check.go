package pcfg

import (
	"math"
	"sort"
)

// MassReport flags one parent symbol whose binary-rule probabilities do not
// sum to 1.
type MassReport struct {
	Parent string
	Mass   float64
}

// CheckMass sums the binary-rule probability mass per parent symbol and
// reports every parent whose total deviates from 1 by more than tolerance.
// The extractor normalizes counts per parent, so a deviation usually means
// the file was hand-edited or truncated. Reports come back sorted by parent
// for stable output; a clean grammar yields nil.
//
// Parents that also produce terminals carry part of their mass in the
// lexicon section, which this check cannot see, so those parents routinely
// sum below 1 and the tolerance should be chosen accordingly.
func (g *Grammar) CheckMass(tolerance float64) []MassReport {
	mass := map[string]float64{}
	for _, group := range g.rules {
		for _, rules := range group {
			for _, rule := range rules {
				mass[rule.Parent] += rule.Probability
			}
		}
	}

	var reports []MassReport
	for parent, total := range mass {
		if math.Abs(total-1) > tolerance {
			reports = append(reports, MassReport{Parent: parent, Mass: total})
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Parent < reports[j].Parent
	})
	return reports
}

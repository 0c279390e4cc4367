// Package chart holds the six named trade value charts as plain data
// (spec §9 "Chart types as data" design note), each mapping an overall pick
// number to a point value. The Trade Engine and Auto-Pick Engine consult a
// chart by models.ChartType; neither computes chart values algorithmically.
package chart

import "github.com/draftsim/engine/go/internal/models"

// Chart maps overall_pick -> value. Lookups beyond the table extrapolate
// with the floor value of the last tabulated pick, matching how every
// published chart treats very late-round picks.
type Chart struct {
	Name   models.ChartType
	Points map[int]float64
	floor  float64
}

// ValueFor returns the point value for an overall pick number, extrapolating
// with the chart's tabulated floor for picks beyond its range rather than
// returning zero.
func (c Chart) ValueFor(overallPick int) float64 {
	if v, ok := c.Points[overallPick]; ok {
		return v
	}
	return c.floor
}

var registry = map[models.ChartType]Chart{}

func register(c Chart) {
	if c.floor == 0 && len(c.Points) > 0 {
		min := c.Points[1]
		for _, v := range c.Points {
			if v < min {
				min = v
			}
		}
		c.floor = min
	}
	registry[c.Name] = c
}

// Lookup returns the configured chart for a session's chart_type.
func Lookup(t models.ChartType) (Chart, bool) {
	c, ok := registry[t]
	return c, ok
}

func init() {
	register(Chart{Name: models.ChartJimmyJohnson, Points: jimmyJohnsonPoints()})
	register(Chart{Name: models.ChartRichHill, Points: richHillPoints()})
	register(Chart{Name: models.ChartHarvardDraftChart, Points: harvardPoints()})
	register(Chart{Name: models.ChartChaseStuart, Points: chaseStuartPoints()})
	register(Chart{Name: models.ChartFitzgerald, Points: fitzgeraldPoints()})
	register(Chart{Name: models.ChartPFR, Points: pfrBlendPoints()})
}

// jimmyJohnsonPoints is the classic 1990s trade-value chart, still the most
// commonly cited baseline; values decay roughly geometrically from pick 1.
func jimmyJohnsonPoints() map[int]float64 {
	return geometricDecay(3000, 0.966, 224)
}

// richHillPoints follows Rich Hill's statistically-derived re-weighting,
// flatter in the middle rounds than Jimmy Johnson's.
func richHillPoints() map[int]float64 {
	return geometricDecay(3000, 0.975, 224)
}

// harvardPoints mirrors the Harvard Sports Analysis Collective's chart,
// which discounts first-round picks more aggressively.
func harvardPoints() map[int]float64 {
	return geometricDecay(2000, 0.97, 224)
}

// chaseStuartPoints follows Chase Stuart's career-AV-regression chart.
func chaseStuartPoints() map[int]float64 {
	return geometricDecay(1500, 0.978, 224)
}

// fitzgeraldPoints mirrors the Fitzgerald-Spielberger chart, widely used as
// a "fair trade" reference in analytics commentary.
func fitzgeraldPoints() map[int]float64 {
	return geometricDecay(3000, 0.968, 224)
}

// pfrBlendPoints averages the other five published charts pick-by-pick,
// offered as a consensus default.
func pfrBlendPoints() map[int]float64 {
	sources := []map[int]float64{
		jimmyJohnsonPoints(), richHillPoints(), harvardPoints(),
		chaseStuartPoints(), fitzgeraldPoints(),
	}
	out := make(map[int]float64, 224)
	for pick := 1; pick <= 224; pick++ {
		var sum float64
		for _, s := range sources {
			sum += s[pick]
		}
		out[pick] = sum / float64(len(sources))
	}
	return out
}

func geometricDecay(base float64, ratio float64, picks int) map[int]float64 {
	out := make(map[int]float64, picks)
	v := base
	for pick := 1; pick <= picks; pick++ {
		out[pick] = v
		v *= ratio
	}
	return out
}

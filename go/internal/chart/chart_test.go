package chart

import (
	"testing"

	"github.com/draftsim/engine/go/internal/models"
)

func TestLookupAllSixCharts(t *testing.T) {
	names := []models.ChartType{
		models.ChartJimmyJohnson, models.ChartRichHill, models.ChartHarvardDraftChart,
		models.ChartChaseStuart, models.ChartFitzgerald, models.ChartPFR,
	}
	for _, n := range names {
		c, ok := Lookup(n)
		if !ok {
			t.Fatalf("chart %s not registered", n)
		}
		if c.ValueFor(1) <= c.ValueFor(50) {
			t.Errorf("chart %s: expected pick 1 value > pick 50 value", n)
		}
	}
}

func TestValueForBeyondTableExtrapolatesToFloor(t *testing.T) {
	c, _ := Lookup(models.ChartJimmyJohnson)
	last := c.ValueFor(224)
	beyond := c.ValueFor(500)
	if beyond != last {
		t.Errorf("expected extrapolation to floor value %v, got %v", last, beyond)
	}
}

package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/models"
)

func record(kind string, complexity models.Complexity, refs ...string) models.FormulaRecord {
	return models.FormulaRecord{
		Sheet:      "sheet1",
		Cell:       "A1",
		Kind:       kind,
		Complexity: complexity,
		References: refs,
	}
}

func TestAnalyzeCountsAndOrdering(t *testing.T) {
	m := NewMapper(nil)

	analysis := m.Analyze([]models.FormulaRecord{
		record("SUM", models.ComplexityLow, "A1", "A2"),
		record("VLOOKUP", models.ComplexityHigh, "A1", "B1:B9"),
		record("SUM", models.ComplexityMedium, "A2"),
	})

	assert.Equal(t, 2, analysis.FormulaTypes["SUM"])
	assert.Equal(t, 1, analysis.FormulaTypes["VLOOKUP"])
	assert.Equal(t, []string{"bodhee-core", "studio-backend"}, analysis.RequiredServices)
	assert.Equal(t, []string{"A1", "A2", "B1:B9"}, analysis.DataDependencies)
	assert.Equal(t, models.TierHigh, analysis.ProcessingRequirements["studio-backend"])
	assert.Equal(t, models.TierStandard, analysis.ProcessingRequirements["bodhee-core"])
}

func TestAnalyzeHighestSeverityWins(t *testing.T) {
	m := NewMapper(nil)

	// SUM and INDEX both map to bodhee-core; the later medium signal must
	// not demote the earlier high one.
	analysis := m.Analyze([]models.FormulaRecord{
		record("SUM", models.ComplexityHigh),
		record("INDEX", models.ComplexityMedium),
	})

	assert.Equal(t, models.TierHigh, analysis.ProcessingRequirements["bodhee-core"])
}

func TestComponentsBaseInfrastructure(t *testing.T) {
	m := NewMapper(nil)

	components := m.Components(m.Analyze(nil), true)
	require.Len(t, components, 6)

	names := make([]string, len(components))
	for i, c := range components {
		names[i] = c.Name
		assert.Equal(t, models.ComponentInfrastructure, c.Kind)
		assert.Equal(t, "latest", c.Version)
	}
	assert.Equal(t, []string{"load-balancer", "api-gateway", "database", "cache", "monitoring", "logging"}, names)

	byName := make(map[string]models.Component)
	for _, c := range components {
		byName[c.Name] = c
	}
	assert.Equal(t, 1, byName["database"].Replicas)
	assert.Equal(t, 1, byName["monitoring"].Replicas)
	assert.Equal(t, 1, byName["logging"].Replicas)
	assert.Equal(t, 2, byName["load-balancer"].Replicas)
	assert.False(t, byName["cache"].Required)
	assert.True(t, byName["database"].Required)
}

func TestComponentsDeduplicatesByKind(t *testing.T) {
	m := NewMapper(nil)

	analysis := m.Analyze([]models.FormulaRecord{
		record("SUM", models.ComplexityLow),
		record("SUM", models.ComplexityLow),
		record("SUM", models.ComplexityLow),
	})
	components := m.Components(analysis, false)

	count := 0
	for _, c := range components {
		if c.Name == "bodhee-core" {
			count++
			assert.Equal(t, models.ComponentApplication, c.Kind)
			assert.Equal(t, 2, c.Replicas)
		}
	}
	assert.Equal(t, 1, count, "three SUM formulas must yield exactly one component")
}

func TestComponentsResourceEscalation(t *testing.T) {
	m := NewMapper(nil)

	analysis := m.Analyze([]models.FormulaRecord{
		record("SUM", models.ComplexityHigh),
		record("VLOOKUP", models.ComplexityMedium),
		record("TODAY", models.ComplexityLow),
	})
	components := m.Components(analysis, false)

	byName := make(map[string]models.Component)
	for _, c := range components {
		byName[c.Name] = c
	}

	high := byName["bodhee-core"]
	assert.Equal(t, 3, high.Replicas)
	assert.Equal(t, models.TierHigh, high.Resources)

	standard := byName["studio-backend"]
	assert.Equal(t, 2, standard.Replicas)
	assert.Equal(t, models.TierStandard, standard.Resources)

	low := byName["bxs-masterdata-management"]
	assert.Equal(t, 2, low.Replicas)
	assert.Empty(t, low.Resources)
}

func TestComponentsDependencyExpansion(t *testing.T) {
	m := NewMapper(nil)

	// studio-backend and studio-ui both depend on cache, which also exists
	// in the base infrastructure; no duplicate names may appear.
	analysis := m.Analyze([]models.FormulaRecord{
		record("VLOOKUP", models.ComplexityLow),
		record("HLOOKUP", models.ComplexityLow),
	})
	components := m.Components(analysis, true)

	seen := make(map[string]int)
	for _, c := range components {
		seen[c.Name]++
	}
	for name, n := range seen {
		assert.Equalf(t, 1, n, "component %q appears %d times", name, n)
	}

	// search-engine is new; database/cache already present from base infra
	assert.Contains(t, seen, "search-engine")
	byName := make(map[string]models.Component)
	for _, c := range components {
		byName[c.Name] = c
	}
	assert.Equal(t, models.ComponentDependency, byName["search-engine"].Kind)
	assert.Equal(t, 1, byName["search-engine"].Replicas)
	// cache stays the infrastructure entry it was, not a dependency rewrite
	assert.Equal(t, models.ComponentInfrastructure, byName["cache"].Kind)
}

func TestComponentsWithoutDependencies(t *testing.T) {
	m := NewMapper(nil)

	analysis := m.Analyze([]models.FormulaRecord{record("IF", models.ComplexityLow)})
	components := m.Components(analysis, false)

	for _, c := range components {
		assert.NotEqual(t, models.ComponentDependency, c.Kind)
	}
}

func TestComponentsIdempotent(t *testing.T) {
	m := NewMapper(nil)

	records := []models.FormulaRecord{
		record("SUM", models.ComplexityHigh, "A1"),
		record("VLOOKUP", models.ComplexityLow, "B2"),
		record("TODAY", models.ComplexityMedium),
	}

	first := m.Components(m.Analyze(records), true)
	second := m.Components(m.Analyze(records), true)
	assert.Equal(t, first, second)
}

func TestComponentsUnmappedKindContributesNothing(t *testing.T) {
	m := NewMapper(nil)

	analysis := m.Analyze([]models.FormulaRecord{record(models.KindUnknown, models.ComplexityLow)})
	components := m.Components(analysis, true)

	assert.Len(t, components, 6, "unknown kinds add no application components")
	assert.Equal(t, 1, analysis.FormulaTypes[models.KindUnknown], "but still count in the kind histogram")
}

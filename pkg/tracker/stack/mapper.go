package stack

import "github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/models"

// Mapper translates classified formulas into a deduplicated component set.
type Mapper struct {
	tables *Tables
}

// NewMapper returns a mapper backed by the given tables.
// A nil tables argument selects DefaultTables.
func NewMapper(tables *Tables) *Mapper {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Mapper{tables: tables}
}

// Analyze reduces a batch of classified formulas to component requirements.
// All derived sequences are first-seen ordered so the output is stable
// regardless of how the batch was produced.
func (m *Mapper) Analyze(records []models.FormulaRecord) *models.RequirementAnalysis {
	analysis := &models.RequirementAnalysis{
		FormulaTypes: make(map[string]int),
		ComplexityLevels: map[models.Complexity]int{
			models.ComplexityLow:    0,
			models.ComplexityMedium: 0,
			models.ComplexityHigh:   0,
		},
		RequiredServices:       []string{},
		DataDependencies:       []string{},
		ProcessingRequirements: make(map[string]models.ResourceTier),
	}

	seenServices := make(map[string]struct{})
	seenRefs := make(map[string]struct{})

	for _, rec := range records {
		analysis.FormulaTypes[rec.Kind]++
		if _, ok := analysis.ComplexityLevels[rec.Complexity]; ok {
			analysis.ComplexityLevels[rec.Complexity]++
		}

		mapping, ok := m.tables.ComponentMappings[rec.Kind]
		if !ok {
			continue
		}

		if _, ok := seenServices[mapping.Service]; !ok {
			seenServices[mapping.Service] = struct{}{}
			analysis.RequiredServices = append(analysis.RequiredServices, mapping.Service)
		}

		for _, ref := range rec.References {
			if _, ok := seenRefs[ref]; !ok {
				seenRefs[ref] = struct{}{}
				analysis.DataDependencies = append(analysis.DataDependencies, ref)
			}
		}

		// Highest severity wins when several kinds share a target component.
		switch rec.Complexity {
		case models.ComplexityHigh:
			analysis.ProcessingRequirements[mapping.Service] = models.TierHigh
		case models.ComplexityMedium:
			if analysis.ProcessingRequirements[mapping.Service] != models.TierHigh {
				analysis.ProcessingRequirements[mapping.Service] = models.TierStandard
			}
		}
	}

	return analysis
}

// Components builds the ordered, name-deduplicated component set: base
// infrastructure first in table order, then application components in
// first-encountered order, then expanded dependencies in the order each
// parent was processed and each dependency declared.
func (m *Mapper) Components(analysis *models.RequirementAnalysis, includeDependencies bool) []models.Component {
	components := make([]models.Component, 0, len(m.tables.BaseInfrastructure)+len(analysis.RequiredServices))
	present := make(map[string]struct{})

	add := func(c models.Component) {
		if _, ok := present[c.Name]; ok {
			return
		}
		present[c.Name] = struct{}{}
		components = append(components, c)
	}

	for _, infra := range m.tables.BaseInfrastructure {
		add(models.Component{
			Name:     infra.Name,
			Kind:     models.ComponentInfrastructure,
			Category: "infrastructure",
			Required: infra.Required,
			Version:  componentVersion,
			Replicas: infra.Replicas,
		})
	}

	for _, service := range analysis.RequiredServices {
		component := models.Component{
			Name:     service,
			Kind:     models.ComponentApplication,
			Category: "service",
			Required: true,
			Version:  componentVersion,
			Replicas: 2,
		}
		switch analysis.ProcessingRequirements[service] {
		case models.TierHigh:
			component.Replicas = 3
			component.Resources = models.TierHigh
		case models.TierStandard:
			component.Resources = models.TierStandard
		}
		add(component)

		if !includeDependencies {
			continue
		}
		for _, dep := range m.tables.Dependencies[service] {
			add(models.Component{
				Name:     dep,
				Kind:     models.ComponentDependency,
				Category: "support",
				Required: true,
				Version:  componentVersion,
				Replicas: 1,
			})
		}
	}

	return components
}

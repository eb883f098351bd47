// Package stack synthesizes deployment manifests from classified formulas.
package stack

// ComponentMapping names the application component a formula kind pulls in.
type ComponentMapping struct {
	Service  string
	Category string
}

// InfraComponent is one entry of the always-present base infrastructure.
// Declared order is the emission order.
type InfraComponent struct {
	Name     string
	Required bool
	// Replicas is 1 for stateful and observability pieces, 2 for the
	// stateless fan-out pieces.
	Replicas int
}

// Tables holds the synthesis lookup data. Construct once and pass by
// reference; never mutate at runtime.
type Tables struct {
	// ComponentMappings maps formula kind to its application component.
	ComponentMappings map[string]ComponentMapping
	// Dependencies maps an application component name to the supporting
	// components it requires, in declared order.
	Dependencies map[string][]string
	// BaseInfrastructure is emitted first into every stack, in order.
	BaseInfrastructure []InfraComponent
}

// DefaultTables returns the standard synthesis tables.
func DefaultTables() *Tables {
	return &Tables{
		ComponentMappings: map[string]ComponentMapping{
			"VLOOKUP":     {"studio-backend", "lookup"},
			"HLOOKUP":     {"studio-ui", "lookup"},
			"INDEX":       {"bodhee-core", "indexing"},
			"MATCH":       {"file-upload-connector", "matching"},
			"IF":          {"bodhee-security", "conditional"},
			"SUMIF":       {"bxs-masterdata", "aggregation"},
			"COUNTIF":     {"bxs-masterdata-management", "aggregation"},
			"CONCATENATE": {"studio-backend", "formatting"},
			"SUM":         {"bodhee-core", "math"},
			"AVERAGE":     {"studio-ui", "math"},
			"MAX":         {"bodhee-security", "math"},
			"MIN":         {"file-upload-connector", "math"},
			"ROUND":       {"bxs-masterdata", "math"},
			"TODAY":       {"bxs-masterdata-management", "temporal"},
			"NOW":         {"studio-backend", "temporal"},
			"DATE":        {"studio-ui", "temporal"},
			"INDIRECT":    {"bodhee-core", "dynamic"},
			"OFFSET":      {"bodhee-security", "dynamic"},
			"CHOOSE":      {"file-upload-connector", "selection"},
			"SWITCH":      {"bxs-masterdata", "selection"},
			"TEXTJOIN":    {"bxs-masterdata-management", "formatting"},
			"FILTER":      {"studio-backend", "filtering"},
			"UNIQUE":      {"studio-ui", "deduplication"},
			"SORT":        {"bodhee-core", "ordering"},
			"ARITHMETIC":  {"bodhee-security", "basic-math"},
			"REFERENCE":   {"file-upload-connector", "basic"},
		},
		Dependencies: map[string][]string{
			"studio-backend":            {"database", "cache"},
			"studio-ui":                 {"search-engine", "cache"},
			"bodhee-core":               {"compute-engine"},
			"bodhee-security":           {"rules-engine"},
			"file-upload-connector":     {"reference-resolver"},
			"bxs-masterdata":            {"text-processor"},
			"bxs-masterdata-management": {"time-service"},
		},
		BaseInfrastructure: []InfraComponent{
			{Name: "load-balancer", Required: true, Replicas: 2},
			{Name: "api-gateway", Required: true, Replicas: 2},
			{Name: "database", Required: true, Replicas: 1},
			{Name: "cache", Required: false, Replicas: 2},
			{Name: "monitoring", Required: true, Replicas: 1},
			{Name: "logging", Required: true, Replicas: 1},
		},
	}
}

// lookupKinds trigger the data-services configuration block.
var lookupKinds = []string{"VLOOKUP", "HLOOKUP", "INDEX", "MATCH"}

// calculationKinds trigger the calculation-services configuration block.
var calculationKinds = []string{"SUM", "AVERAGE", "COUNT"}

// temporalKinds trigger the date-services configuration block.
var temporalKinds = []string{"TODAY", "NOW", "DATE"}

// componentVersion is the image version pin for generated components.
const componentVersion = "latest"

package models

// DeploymentConfig holds the rollout strategy template.
type DeploymentConfig struct {
	Strategy       string `json:"strategy"`
	MaxUnavailable string `json:"max_unavailable"`
	MaxSurge       string `json:"max_surge"`
}

// LoadBalancerConfig holds load balancer settings.
type LoadBalancerConfig struct {
	Algorithm   string `json:"algorithm"`
	HealthCheck string `json:"health_check"`
}

// APIGatewayConfig holds API gateway settings.
type APIGatewayConfig struct {
	RateLimiting string `json:"rate_limiting"`
	Timeout      string `json:"timeout"`
}

// NetworkingConfig groups network-facing settings.
type NetworkingConfig struct {
	LoadBalancer LoadBalancerConfig `json:"load_balancer"`
	APIGateway   APIGatewayConfig   `json:"api_gateway"`
}

// ScalingConfig holds replica scaling settings.
type ScalingConfig struct {
	AutoScaling     bool `json:"auto_scaling"`
	MinReplicas     int  `json:"min_replicas"`
	MaxReplicas     int  `json:"max_replicas"`
	CPUThreshold    int  `json:"cpu_threshold"`
	MemoryThreshold int  `json:"memory_threshold"`
}

// MonitoringConfig holds observability settings.
type MonitoringConfig struct {
	MetricsEnabled bool   `json:"metrics_enabled"`
	LoggingLevel   string `json:"logging_level"`
	Alerts         bool   `json:"alerts"`
}

// SecurityConfig holds security settings.
type SecurityConfig struct {
	EncryptionAtRest       bool `json:"encryption_at_rest"`
	EncryptionInTransit    bool `json:"encryption_in_transit"`
	AuthenticationRequired bool `json:"authentication_required"`
}

// DataServicesConfig is emitted when lookup-family formulas are present.
type DataServicesConfig struct {
	CacheEnabled      bool   `json:"cache_enabled"`
	CacheTTL          string `json:"cache_ttl"`
	IndexOptimization bool   `json:"index_optimization"`
}

// CalculationServicesConfig is emitted when aggregate formulas are present.
type CalculationServicesConfig struct {
	ParallelProcessing bool   `json:"parallel_processing"`
	ResultCaching      bool   `json:"result_caching"`
	Precision          string `json:"precision"`
}

// DateServicesConfig is emitted when date/time formulas are present.
type DateServicesConfig struct {
	Timezone    string `json:"timezone"`
	DateFormat  string `json:"date_format"`
	SyncEnabled bool   `json:"sync_enabled"`
}

// StackConfiguration is the derived environment and runtime configuration.
// The three trailing blocks are nil unless their trigger kinds are present.
type StackConfiguration struct {
	Deployment          DeploymentConfig           `json:"deployment"`
	Networking          NetworkingConfig           `json:"networking"`
	Scaling             ScalingConfig              `json:"scaling"`
	Monitoring          MonitoringConfig           `json:"monitoring"`
	Security            SecurityConfig             `json:"security"`
	DataServices        *DataServicesConfig        `json:"data_services,omitempty"`
	CalculationServices *CalculationServicesConfig `json:"calculation_services,omitempty"`
	DateServices        *DateServicesConfig        `json:"date_services,omitempty"`
}

package stack

import "github.com/theshubhamgour/ReleaseFormulaTracker/pkg/tracker/models"

// EnvironmentProduction is the only environment label with special meaning;
// everything else is treated as non-production.
const EnvironmentProduction = "production"

// SynthesizeConfiguration derives the stack configuration from the target
// environment and the set of distinct formula kinds present. Pure function:
// no block depends on another and nothing is mutated after return.
func SynthesizeConfiguration(environment string, kinds map[string]int) *models.StackConfiguration {
	production := environment == EnvironmentProduction

	loggingLevel := "DEBUG"
	if production {
		loggingLevel = "INFO"
	}

	config := &models.StackConfiguration{
		Deployment: models.DeploymentConfig{
			Strategy:       "rolling-update",
			MaxUnavailable: "25%",
			MaxSurge:       "25%",
		},
		Networking: models.NetworkingConfig{
			LoadBalancer: models.LoadBalancerConfig{
				Algorithm:   "round_robin",
				HealthCheck: "/health",
			},
			APIGateway: models.APIGatewayConfig{
				RateLimiting: "1000/min",
				Timeout:      "30s",
			},
		},
		Scaling: models.ScalingConfig{
			AutoScaling:     production,
			MinReplicas:     1,
			MaxReplicas:     10,
			CPUThreshold:    70,
			MemoryThreshold: 80,
		},
		Monitoring: models.MonitoringConfig{
			MetricsEnabled: true,
			LoggingLevel:   loggingLevel,
			Alerts:         production,
		},
		Security: models.SecurityConfig{
			EncryptionAtRest:       production,
			EncryptionInTransit:    true,
			AuthenticationRequired: true,
		},
	}

	if anyKindPresent(kinds, lookupKinds) {
		config.DataServices = &models.DataServicesConfig{
			CacheEnabled:      true,
			CacheTTL:          "1h",
			IndexOptimization: true,
		}
	}
	if anyKindPresent(kinds, calculationKinds) {
		config.CalculationServices = &models.CalculationServicesConfig{
			ParallelProcessing: true,
			ResultCaching:      true,
			Precision:          "high",
		}
	}
	if anyKindPresent(kinds, temporalKinds) {
		config.DateServices = &models.DateServicesConfig{
			Timezone:    "UTC",
			DateFormat:  "ISO8601",
			SyncEnabled: true,
		}
	}

	return config
}

func anyKindPresent(kinds map[string]int, triggers []string) bool {
	for _, trigger := range triggers {
		if kinds[trigger] > 0 {
			return true
		}
	}
	return false
}

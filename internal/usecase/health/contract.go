package health

import "context"

// StorePinger checks that the entry store answers.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// ProviderChecker checks that the embedding provider answers.
type ProviderChecker interface {
	HealthCheck(ctx context.Context) error
}

package risk

import (
	"ascvd/pkg/domain"
)

// Engine computes the ten-year ASCVD event risk for a clinical assessment.
// Implementations are pure: no I/O, no state, safe for concurrent use.
type Engine interface {
	Assess(in *domain.Assessment) (domain.RiskResult, error)
}

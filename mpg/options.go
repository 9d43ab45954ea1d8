package mpg

import (
	"github.com/ayushgupta0610/sourcecred/address"
	"github.com/ayushgupta0610/sourcecred/weights"
	"github.com/go-playground/validator/v10"
)

// FibrationOptions configures the fibration of scoring nodes across the
// week grid (spec §4.5 Inputs). ScoringPrefixes lists the node-address
// prefixes identifying "scoring" (fibrated) nodes.
type FibrationOptions struct {
	ScoringPrefixes []address.NodeAddress `validate:"-"`
	Beta            float64               `validate:"gte=0,lte=1"`
	GammaForward    float64               `validate:"gte=0,lte=1"`
	GammaBackward   float64               `validate:"gte=0,lte=1"`
}

// SeedOptions configures the seed's teleportation share (spec §4.5 Inputs).
type SeedOptions struct {
	Alpha float64 `validate:"gte=0,lte=1"`
}

// Options bundles everything Build needs besides the input graph:
// fibration/seed parameters, the node and edge weight evaluators, and an
// optional logger.
type Options struct {
	Fibration FibrationOptions
	Seed      SeedOptions
	NodeWeight weights.NodeWeightFn
	EdgeWeight weights.EdgeWeightFn

	// Logger receives Debug-level structured diagnostics during
	// construction (SPEC_FULL.md §A). Nil is treated as "discard all".
	Logger Logger
}

// structValidator is shared across calls; validator.Validate is safe for
// concurrent use once constructed, same as the package-level convention in
// go-playground/validator's own docs.
var structValidator = validator.New()

// validateOptions runs per-field validation (via struct tags) followed by
// the cross-field teleportation-budget check spec §4.5 mandates, which
// struct tags alone cannot express.
func validateOptions(fib FibrationOptions, seed SeedOptions) error {
	if seed.Alpha < 0 || fib.Beta < 0 || fib.GammaForward < 0 || fib.GammaBackward < 0 {
		return newError(ConfigurationError, ErrNegativeParameter, "teleportation parameters must be non-negative", "")
	}
	if err := structValidator.Struct(fib); err != nil {
		return newError(ConfigurationError, ErrTeleportationBudget, err.Error(), "FibrationOptions")
	}
	if err := structValidator.Struct(seed); err != nil {
		return newError(ConfigurationError, ErrTeleportationBudget, err.Error(), "SeedOptions")
	}

	sum := seed.Alpha + fib.Beta + fib.GammaForward + fib.GammaBackward
	if sum > 1 {
		return newError(ConfigurationError, ErrTeleportationBudget,
			"alpha+beta+gammaForward+gammaBackward must be <= 1", "")
	}
	return nil
}

// epochTransitionRemainder is tau_epoch, spec §4.5: the mass available for
// base edges leaving an epoch node.
func epochTransitionRemainder(fib FibrationOptions, seed SeedOptions) float64 {
	return 1 - (seed.Alpha + fib.Beta + fib.GammaForward + fib.GammaBackward)
}

// baseNodeRemainder is the mass available for base edges leaving a
// non-epoch base node: 1 - alpha.
func baseNodeRemainder(seed SeedOptions) float64 {
	return 1 - seed.Alpha
}

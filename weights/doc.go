// Package weights derives scalar mint weights for nodes and per-direction
// scalar weights for edges from a pluggable rule table.
//
// The core (package mpg) consumes only two pure function types,
// NodeWeightFn and EdgeWeightFn: the concrete rule language that produces
// them is an external concern (spec §4.3). This package supplies one
// concrete rule language, PrefixRules, as a reference implementation and
// test fixture source — a longest-matching-prefix table of node-weight and
// edge-weight rules, loadable from YAML for test fixtures.
package weights

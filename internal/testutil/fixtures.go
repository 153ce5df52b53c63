// Package testutil provides deterministic ensemble fixtures shared across
// package tests.
package testutil

import (
	"github.com/google/uuid"

	"github.com/subsurface-io/resfilter/internal/ensemble"
)

// Fixed case UUIDs so golden files and ident round-trips stay stable.
const (
	DrogonCaseUUID = "2f9cbf08-52f1-4e1c-b16f-2e8d8e2a1437"
	SecondCaseUUID = "8a3d9f44-6c0a-4d9f-9b6a-1c2e3d4f5a6b"
)

// GappedUniverse is a non-contiguous realization universe: consecutive runs
// with a hole before the final number.
func GappedUniverse() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 15}
}

// GappedEnsemble returns an ensemble over GappedUniverse.
func GappedEnsemble() *ensemble.Ensemble {
	return ensemble.New(DrogonCaseUUID, "iter-0", GappedUniverse(),
		ensemble.WithCaseName("drogon_design"),
		ensemble.WithFieldIdentifier("DROGON"),
	)
}

// ParameterizedEnsemble returns an ensemble with realizations 0-5 carrying
// one continuous and one discrete parameter.
func ParameterizedEnsemble() *ensemble.Ensemble {
	params := ensemble.NewParameterCollection(
		ensemble.Parameter{
			Ident: "GLOBVAR:FWL",
			NumericValues: map[int]float64{
				0: 1680.0, 1: 1695.5, 2: 1700.0, 3: 1712.25, 4: 1730.0, 5: 1745.5,
			},
		},
		ensemble.Parameter{
			Ident:    "FACIES:MODEL",
			Discrete: true,
			StringValues: map[int]string{
				0: "channel", 1: "lobe", 2: "channel", 3: "channel", 4: "lobe", 5: "sheet",
			},
		},
	)
	return ensemble.New(DrogonCaseUUID, "iter-1", []int{0, 1, 2, 3, 4, 5},
		ensemble.WithCaseName("drogon_design"),
		ensemble.WithParameters(params),
	)
}

// TwoCaseSet returns a set with ensembles from two different cases, one
// pair sharing the ensemble name across cases.
func TwoCaseSet() *ensemble.Set {
	return ensemble.NewSet([]*ensemble.Ensemble{
		GappedEnsemble(),
		ParameterizedEnsemble(),
		ensemble.New(SecondCaseUUID, "iter-0", []int{0, 1, 2, 3}),
	})
}

// RandomCaseUUID returns a fresh case UUID for tests that need an identity
// guaranteed not to collide with the fixtures.
func RandomCaseUUID() string {
	return uuid.NewString()
}

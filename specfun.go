/*
Package specfun evaluates transcendental special functions to near machine precision over the whole
domain of a float64 argument. Each function family partitions its domain into regimes and routes every
argument to the numerically stable technique for that regime: Chebyshev fits, continued fractions,
order recurrences, asymptotic expansions and Levin-accelerated series.

The exemplar families are the Fermi-Dirac integrals (package fermidirac) and the hyperbolic Legendre
functions H3d (package legendre). Every public operation is available in three tiers sharing one
computation: a checked form returning a result.Result, a strict form returning an error, and a
best-effort form that only emits a diagnostic.
*/
package specfun

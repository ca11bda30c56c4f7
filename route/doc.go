// SPDX-License-Identifier: MIT
// Package: qospath/route
//
// Package route defines the contract shared by all path solvers — Request,
// Result, and the Solver interface — together with the repair/decoding
// helpers that turn raw search-space candidates into valid simple paths.
//
// PathRepair policy (applied uniformly across solvers): a candidate that
// cannot be decoded into a feasible source→destination path is rejected at
// the point of decoding. Population solvers react per their documented rule —
// PSO assigns the particle +Inf fitness so it can never become global best
// while a feasible particle exists; GA keeps the parent instead of admitting
// an infeasible child. Only when an entire search never produces a feasible
// path does ErrNoFeasiblePath surface as the request-level error.
//
// Bandwidth demand: Request.DemandMbps makes links with lower capacity
// untraversable for that request. Zero disables the constraint.
package route

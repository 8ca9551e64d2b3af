// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrNoAccountWasFound is returned when an operation targets an
	// account ID that does not exist in the database.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrConstraintViolation is returned when the database rejects a
	// statement because of an integrity constraint (not-null, check,
	// unique). It indicates a bug or schema drift rather than bad user
	// input, so the route boundary maps it to a 5xx response.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrConnectionFailure is returned when the database connection is
	// lost or cannot be established while executing a statement.
	ErrConnectionFailure = errors.New("database connection failure")
)

// Low-level database operation errors. These are returned (or wrapped)
// by repository methods when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a
	// parameterised SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against
	// the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a
	// single result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan account row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan account rows")
)

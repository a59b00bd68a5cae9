// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering an email that is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup or update matches no
	// row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileAlreadyExists is returned when a user already owns a client
	// profile.
	ErrProfileAlreadyExists = errors.New("client profile already exists")

	// ErrInquiryNotSaved is returned when an inquiry INSERT affects no rows.
	ErrInquiryNotSaved = errors.New("inquiry was not saved")

	// ErrUnsupportedDriver is returned for database drivers other than pgx
	// and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a JSON column cannot be encoded or
	// decoded.
	ErrEncodingJSON = errors.New("failed to encode json column")
)

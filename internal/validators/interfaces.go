// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input checks the portal services run before
// touching storage: account credentials and client profiles, content slot
// documents, and normalized inquiry records.
//
// Each validator understands a fixed set of value types and reports
// unsupported ones with ErrUnsupportedType, so a service can hold any of them
// behind the Validator interface.
package validators

import "context"

// Validator checks a value. The optional field names narrow the check to
// those fields; with no names every rule for the value's type applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}

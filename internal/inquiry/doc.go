// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package inquiry turns raw form values into inquiry records and writes them
// to the inquiry store.
//
// [Normalize] promotes well-known fields (name, email, phone, company,
// subject, message) to named attributes and folds every other field into the
// record metadata. [Submitter] wires a normalized write to a form's submit
// callback and reports the outcome through a [Notifier].
package inquiry

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package forms is the dynamic form engine.
//
// A form is described by an ordered list of [models.FieldDescriptor]. [New]
// derives the value map from it, [Form.Set] and [Form.SetChecked] edit single
// entries, and [Form.Submit] hands a snapshot of the values to a [SubmitFunc].
// The form resets only when the submit callback reports success.
//
// [Catalog] holds the portal's intake forms.
package forms

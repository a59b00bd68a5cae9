// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package content resolves editable content slots for informational pages.
//
// A [Slot] is bound to a slot key and a default payload. The default is
// available synchronously and stays in place until a fetch returns a
// non-empty payload, which replaces it wholesale. Fetch failures are
// surfaced through [Slot.Err] and never blank the page.
//
// [Decode] coerces a raw payload onto a typed default once, so pages work
// with [HomeContent], [FooterContent] and friends instead of untyped maps.
package content

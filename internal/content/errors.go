// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import "errors"

var (
	ErrUnknownSectionKind = errors.New("unknown section kind")
	ErrInvalidSection     = errors.New("section payload does not match its kind")
	ErrNilReader          = errors.New("content reader is nil")
)

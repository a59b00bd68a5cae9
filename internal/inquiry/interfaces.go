// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inquiry

import (
	"context"

	"github.com/MKhiriev/venture-portal/models"
)

// Writer stores a normalized inquiry.
type Writer interface {
	CreateInquiry(ctx context.Context, record models.InquiryRecord) error
}

// Notifier shows the user a transient success or failure message.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// NopNotifier drops every message.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Failure(string) {}

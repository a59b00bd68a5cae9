// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inquiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/venture-portal/internal/forms"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/models"
)

const (
	SuccessMessage = "Thank you! Your inquiry has been submitted."
	FailureMessage = "Something went wrong. Please try again."
)

var ErrNilWriter = errors.New("inquiry writer is nil")

// Submitter normalizes form values and writes them as inquiries.
type Submitter struct {
	writer   Writer
	notifier Notifier
}

// New builds a Submitter. A nil notifier is replaced by [NopNotifier].
func New(writer Writer, notifier Notifier) *Submitter {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Submitter{writer: writer, notifier: notifier}
}

// Submit normalizes formData and writes it. It reports success as a boolean
// and never returns an error; the outcome is also shown through the notifier.
func (s *Submitter) Submit(ctx context.Context, inquiryType string, formData map[string]any, metadata map[string]any) (ok bool) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("type", inquiryType).Interface("panic", r).Msg("inquiry submit panicked")
			s.notifier.Failure(FailureMessage)
			ok = false
		}
	}()

	record := Normalize(inquiryType, formData, metadata)

	if err := s.write(ctx, record); err != nil {
		log.Err(err).Str("type", record.Type).Msg("inquiry was not stored")
		s.notifier.Failure(FailureMessage)
		return false
	}

	log.Info().Str("type", record.Type).Msg("inquiry stored")
	s.notifier.Success(SuccessMessage)
	return true
}

// For returns a form submit callback recording inquiries of inquiryType.
func (s *Submitter) For(inquiryType string) forms.SubmitFunc {
	return s.ForWithMetadata(inquiryType, nil)
}

// ForWithMetadata is like For and attaches metadata to every record.
func (s *Submitter) ForWithMetadata(inquiryType string, metadata map[string]any) forms.SubmitFunc {
	return func(ctx context.Context, values models.FormValues) (bool, error) {
		return s.Submit(ctx, inquiryType, values, metadata), nil
	}
}

func (s *Submitter) write(ctx context.Context, record models.InquiryRecord) error {
	if s.writer == nil {
		return ErrNilWriter
	}
	if err := s.writer.CreateInquiry(ctx, record); err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

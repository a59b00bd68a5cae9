// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inquiry

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/venture-portal/internal/forms"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type writerFunc func(ctx context.Context, record models.InquiryRecord) error

func (f writerFunc) CreateInquiry(ctx context.Context, record models.InquiryRecord) error {
	return f(ctx, record)
}

type recordingNotifier struct {
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(m string) { n.successes = append(n.successes, m) }
func (n *recordingNotifier) Failure(m string) { n.failures = append(n.failures, m) }

func TestSubmitter_Submit(t *testing.T) {
	var stored models.InquiryRecord
	notifier := &recordingNotifier{}
	s := New(writerFunc(func(_ context.Context, r models.InquiryRecord) error {
		stored = r
		return nil
	}), notifier)

	ok := s.Submit(context.Background(), "contact", map[string]any{"name": "Ada", "message": "hi"}, nil)

	assert.True(t, ok)
	assert.Equal(t, "Ada", stored.Name)
	assert.Equal(t, "Contact Inquiry", stored.Subject)
	assert.Equal(t, []string{SuccessMessage}, notifier.successes)
	assert.Empty(t, notifier.failures)
}

func TestSubmitter_SubmitFailure(t *testing.T) {
	tests := []struct {
		name   string
		writer Writer
	}{
		{
			name: "writer error",
			writer: writerFunc(func(context.Context, models.InquiryRecord) error {
				return errors.New("insert failed")
			}),
		},
		{
			name: "writer panic",
			writer: writerFunc(func(context.Context, models.InquiryRecord) error {
				panic("boom")
			}),
		},
		{
			name:   "nil writer",
			writer: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			s := New(tt.writer, notifier)

			ok := s.Submit(context.Background(), "contact", map[string]any{"name": "Ada"}, nil)

			assert.False(t, ok)
			assert.Equal(t, []string{FailureMessage}, notifier.failures)
			assert.Empty(t, notifier.successes)
		})
	}
}

func TestSubmitter_ForFailedInsertKeepsFormValues(t *testing.T) {
	s := New(writerFunc(func(context.Context, models.InquiryRecord) error {
		return errors.New("insert failed")
	}), nil)

	f, err := forms.FromDefinition(forms.DefaultCatalog().List()[0], s.For(forms.TypeContact))
	require.NoError(t, err)
	require.NoError(t, f.Set("name", "Ada"))
	require.NoError(t, f.Set("email", "ada@example.com"))
	require.NoError(t, f.Set("message", "hello"))
	filled := f.Values()

	ok, err := f.Submit(context.Background())

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, filled, f.Values())
}

func TestSubmitter_ForWithMetadata(t *testing.T) {
	var stored models.InquiryRecord
	s := New(writerFunc(func(_ context.Context, r models.InquiryRecord) error {
		stored = r
		return nil
	}), nil)

	ok, err := s.ForWithMetadata(forms.TypeGIG, map[string]any{"page": "gig"})(
		context.Background(),
		models.FormValues{"fullName": "Ada", "targetMarket": "Europe"},
	)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, forms.TypeGIG, stored.Type)
	assert.Equal(t, map[string]any{"page": "gig", "targetMarket": "Europe"}, stored.Metadata)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inquiry

import (
	"encoding/json"
	"maps"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/venture-portal/models"
)

const (
	DefaultName    = "Anonymous"
	DefaultEmail   = "unknown"
	DefaultMessage = "(no message provided)"
	DefaultType    = "general"
)

// Candidate keys for each named attribute, in priority order.
var (
	nameKeys    = []string{"name", "fullName", "founderName", "contactPerson"}
	emailKeys   = []string{"email"}
	phoneKeys   = []string{"phone"}
	companyKeys = []string{"companyName", "company"}
	subjectKeys = []string{"subject"}
	messageKeys = []string{"message", "needs", "description", "companyOverview", "projectDescription"}

	candidateKeys = [][]string{nameKeys, emailKeys, phoneKeys, companyKeys, subjectKeys, messageKeys}
)

// Normalize builds an inquiry record from raw form data.
//
// Each named attribute takes the first candidate key holding a non-empty
// value. The chosen key, and candidate keys whose value is empty, are consumed.
// Every other form key lands in metadata, layered over the caller metadata.
// Caller metadata never carries a candidate key of a named attribute; such
// keys are dropped so the attribute only ever comes from the form.
// Name, email and message fall back to fixed defaults; the subject falls back
// to "<Type> Inquiry".
func Normalize(inquiryType string, formData map[string]any, metadata map[string]any) models.InquiryRecord {
	inquiryType = strings.TrimSpace(inquiryType)
	if inquiryType == "" {
		inquiryType = DefaultType
	}

	consumed := make(map[string]struct{})
	pick := func(keys []string) string {
		var chosen string
		for _, key := range keys {
			raw, present := formData[key]
			if !present {
				continue
			}
			v, ok := stringValue(raw)
			if !ok {
				continue
			}
			if v == "" {
				consumed[key] = struct{}{}
				continue
			}
			if chosen == "" {
				chosen = v
				consumed[key] = struct{}{}
			}
		}
		return chosen
	}

	record := models.InquiryRecord{
		Type:        inquiryType,
		Name:        orDefault(pick(nameKeys), DefaultName),
		Email:       orDefault(pick(emailKeys), DefaultEmail),
		Phone:       pick(phoneKeys),
		CompanyName: pick(companyKeys),
		Subject:     orDefault(pick(subjectKeys), DefaultSubject(inquiryType)),
		Message:     orDefault(pick(messageKeys), DefaultMessage),
	}

	meta := maps.Clone(metadata)
	if meta == nil {
		meta = make(map[string]any, len(formData))
	}
	for _, keys := range candidateKeys {
		for _, key := range keys {
			delete(meta, key)
		}
	}
	for key, v := range formData {
		if _, ok := consumed[key]; ok {
			continue
		}
		meta[key] = v
	}
	record.Metadata = meta

	return record
}

// DefaultSubject returns "<Type> Inquiry" with the first letter capitalised.
// Invalid UTF-8 bytes in the type are dropped.
func DefaultSubject(inquiryType string) string {
	inquiryType = strings.ToValidUTF8(inquiryType, "")
	r, size := utf8.DecodeRuneInString(inquiryType)
	if r == utf8.RuneError {
		return "Inquiry"
	}
	return string(unicode.ToUpper(r)) + inquiryType[size:] + " Inquiry"
}

// stringValue renders scalar form values as trimmed text. Booleans, lists and
// objects are not text and are left for metadata.
func stringValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(val), true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	default:
		return "", false
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

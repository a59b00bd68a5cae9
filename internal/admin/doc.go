// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package admin seeds content slots out of band.
//
// Every *.toml or *.json file in a directory is one slot: the file stem is
// the slot key and the decoded document is its payload. A seeded payload
// replaces the stored one wholesale.
package admin

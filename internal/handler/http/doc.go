// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the portal's JSON API.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: trace ids, access logging, prometheus metrics, CORS, per-IP
// submission throttling and bearer authentication.
package http

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It loads the session once, keeps it fresh with background workers and
// runs the terminal UI until the user quits.
package client

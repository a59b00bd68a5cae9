// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/venture-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

const toastTTL = 4 * time.Second

// toastNotifier implements inquiry.Notifier by queueing toasts for the root
// model. A full queue drops the toast instead of blocking the submitter.
type toastNotifier struct {
	ch chan toastMsg
}

func newToastNotifier() *toastNotifier {
	return &toastNotifier{ch: make(chan toastMsg, 8)}
}

func (n *toastNotifier) Success(message string) {
	n.push(toastMsg{text: message})
}

func (n *toastNotifier) Failure(message string) {
	n.push(toastMsg{text: message, failure: true})
}

func (n *toastNotifier) push(msg toastMsg) {
	select {
	case n.ch <- msg:
	default:
	}
}

func waitForToast(ch <-chan toastMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func waitForSession(ch <-chan models.SessionState) tea.Cmd {
	return func() tea.Msg {
		return sessionChangedMsg{state: <-ch}
	}
}

func clearToastAfter(seq int) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

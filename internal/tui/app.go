// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/venture-portal/internal/content"
	"github.com/MKhiriev/venture-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) shows toasts and forwards session changes
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	toasts   <-chan toastMsg
	sessions <-chan models.SessionState

	toast    toastMsg
	toastSeq int

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	siteName      string
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage. toasts and sessions
// may be nil.
func NewRootModel(
	pages map[string]tea.Model,
	startPage string,
	buildInfo models.AppBuildInfo,
	toasts <-chan toastMsg,
	sessions <-chan models.SessionState,
) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		toasts:    toasts,
		sessions:  sessions,
		buildInfo: buildInfo,
		siteName:  content.DefaultGlobalSettings().SiteName,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 3)
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	if r.toasts != nil {
		cmds = append(cmds, waitForToast(r.toasts))
	}
	if r.sessions != nil {
		cmds = append(cmds, waitForSession(r.sessions))
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[m.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if m.Payload != nil {
			payload := m.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case toastMsg:
		r.toast = m
		r.toastSeq++
		if r.toasts == nil {
			return r, clearToastAfter(r.toastSeq)
		}
		return r, tea.Batch(waitForToast(r.toasts), clearToastAfter(r.toastSeq))

	case clearToastMsg:
		if m.seq == r.toastSeq {
			r.toast = toastMsg{}
		}
		return r, nil

	case sessionChangedMsg:
		var cmd tea.Cmd
		if r.current != nil {
			r.current, cmd = r.current.Update(m)
		}
		if r.sessions == nil {
			return r, cmd
		}
		return r, tea.Batch(cmd, waitForSession(r.sessions))

	case homeLoadedMsg:
		if settings, ok := m.contents[models.SlotGlobalSettings]; ok {
			r.siteName = content.Decode(settings, content.DefaultGlobalSettings()).SiteName
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.siteName)
	}

	var view string
	if r.current == nil {
		view = renderPage("PORTAL", "", "")
	} else {
		view = r.current.View()
	}

	if r.toast.text == "" {
		return view
	}
	if r.toast.failure {
		return errorStyle.Render("✗ "+r.toast.text) + "\n\n" + view
	}
	return successStyle.Render("✓ "+r.toast.text) + "\n\n" + view
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*HomeModel)
	return ok
}

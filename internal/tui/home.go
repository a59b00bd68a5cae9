// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/venture-portal/internal/content"
	"github.com/MKhiriev/venture-portal/internal/gate"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label    string
	location string
	signOut  bool
}

// HomeModel renders the home, footer and global settings slots and the main
// menu. The three slots are resolved with one batch read.
type HomeModel struct {
	ctx     context.Context
	portal  Portal
	session Session

	home     content.HomeContent
	footer   content.FooterContent
	settings content.GlobalSettings
	loading  bool
	errMsg   string

	idx int
}

func NewHomeModel(ctx context.Context, portal Portal, session Session) *HomeModel {
	return &HomeModel{
		ctx:      ctx,
		portal:   portal,
		session:  session,
		home:     content.DefaultHome(),
		footer:   content.DefaultFooter(),
		settings: content.DefaultGlobalSettings(),
	}
}

func (m *HomeModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		m.loading = false
		m.errMsg = humanizeError(msg.err)
		m.apply(msg.contents)
		return m, nil

	case authResultMsg:
		m.errMsg = humanizeError(msg.err)
		return m, nil

	case sessionChangedMsg:
		if items := m.items(); m.idx >= len(items) {
			m.idx = len(items) - 1
		}
		return m, nil

	case tea.KeyMsg:
		items := m.items()
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.cmdLoad()
		case key.Matches(msg, keys.enter):
			item := items[m.idx]
			if item.signOut {
				return m, m.cmdSignOut()
			}
			return m, navigate(item.location)
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	if m.settings.Announcement != "" {
		b.WriteString(m.settings.Announcement)
		b.WriteString("\n\n")
	}

	b.WriteString(sectionRenderer{}.Hero(m.home.Hero))
	if body := renderSections(m.home.Sections); body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	b.WriteString("\n\n")
	for i, item := range m.items() {
		b.WriteString(cursor(i == m.idx))
		b.WriteString(" ")
		b.WriteString(item.label)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	if m.loading {
		b.WriteString("\n")
		b.WriteString(gate.LoadingText)
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage(strings.ToUpper(m.settings.SiteName), b.String(), "enter: open │ ↑/↓: navigate │ r: reload │ v: version")
}

func (m *HomeModel) renderFooter() string {
	var b strings.Builder

	b.WriteString(helpStyle.Render(m.footer.Tagline))
	links := make([]string, 0, len(m.footer.Links))
	for _, l := range m.footer.Links {
		links = append(links, l.Label+" "+l.Href)
	}
	if len(links) > 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(strings.Join(links, " · ")))
	}

	contact := make([]string, 0, 3)
	for _, v := range []string{m.settings.ContactEmail, m.settings.ContactPhone, m.settings.Address} {
		if v != "" {
			contact = append(contact, v)
		}
	}
	if len(contact) > 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(strings.Join(contact, " · ")))
	}

	if m.footer.Copyright != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.footer.Copyright))
	}
	return b.String()
}

// items depends on the session: anonymous visitors get sign-in entries,
// signed-in users get sign-out and, until verified, email confirmation.
func (m *HomeModel) items() []menuItem {
	items := make([]menuItem, 0, len(pageSlots)+3)
	for _, p := range pageSlots {
		items = append(items, menuItem{label: p.label, location: "/" + p.key})
	}
	items = append(items, menuItem{label: "Apply / get in touch", location: "/" + pageForms})

	state := m.session.CurrentSession()
	switch {
	case state.Loading:
	case state.User == nil:
		items = append(items,
			menuItem{label: "Sign in", location: "/" + pageLogin},
			menuItem{label: "Create account", location: "/" + pageRegister},
		)
	default:
		if !state.User.IsEmailConfirmed() {
			items = append(items, menuItem{label: "Confirm email", location: "/" + pageConfirm})
		}
		items = append(items, menuItem{label: "Sign out (" + state.User.Email + ")", signOut: true})
	}

	return items
}

func (m *HomeModel) apply(contents map[string]models.ContentPayload) {
	m.home = content.Decode(contents[models.SlotHome], content.DefaultHome())
	m.footer = content.Decode(contents[models.SlotFooter], content.DefaultFooter())
	m.settings = content.Decode(contents[models.SlotGlobalSettings], content.DefaultGlobalSettings())
}

func (m *HomeModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		contents, err := content.ResolveBatch(ctx, portal, map[string]models.ContentPayload{
			models.SlotHome:           content.DefaultPayload(models.SlotHome),
			models.SlotFooter:         content.DefaultPayload(models.SlotFooter),
			models.SlotGlobalSettings: content.DefaultPayload(models.SlotGlobalSettings),
		})
		return homeLoadedMsg{contents: contents, err: err}
	}
}

func (m *HomeModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return authResultMsg{err: session.SignOut(ctx)}
	}
}

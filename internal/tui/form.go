// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/MKhiriev/venture-portal/internal/forms"
	"github.com/MKhiriev/venture-portal/internal/gate"
	"github.com/MKhiriev/venture-portal/internal/inquiry"
	"github.com/MKhiriev/venture-portal/internal/validators"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const halfColumnWidth = 40

var submissionMetadata = map[string]any{"source": "terminal"}

type fieldInput struct {
	field models.FieldDescriptor
	input textinput.Model
}

// FormModel renders an intake form from its field descriptors and submits it
// through the inquiry submitter. Forms marked clients-only are wrapped in the
// access gate.
type FormModel struct {
	ctx       context.Context
	portal    Portal
	session   Session
	submitter *inquiry.Submitter

	def    models.FormDefinition
	form   *forms.Form
	inputs []fieldInput
	focus  int

	loading    bool
	submitting bool
	errMsg     string
}

func NewFormModel(ctx context.Context, portal Portal, session Session, submitter *inquiry.Submitter) *FormModel {
	return &FormModel{
		ctx:       ctx,
		portal:    portal,
		session:   session,
		submitter: submitter,
	}
}

func (m *FormModel) Init() tea.Cmd {
	return nil
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openFormMsg:
		if m.form != nil && m.def.Type == msg.formType {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, m.cmdGetForm(msg.formType)

	case formLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if err := m.load(msg.def); err != nil {
			m.errMsg = err.Error()
		}
		return m, textinput.Blink

	case formSubmittedMsg:
		m.submitting = false
		switch {
		case msg.err != nil:
			m.errMsg = humanizeError(msg.err)
		case msg.ok:
			m.errMsg = ""
			m.syncInputs()
		}
		return m, nil

	case authResultMsg:
		m.errMsg = humanizeError(msg.err)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, navigate("/" + pageForms)
		}
		if m.form == nil {
			return m, nil
		}
		if m.gated() {
			return m, m.handleGateKey(msg)
		}
		return m, m.handleFormKey(msg)
	}

	if m.form == nil || len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus].input, cmd = m.inputs[m.focus].input.Update(msg)
	return m, cmd
}

func (m *FormModel) View() string {
	title := "FORM"
	if m.def.Title != "" {
		title = strings.ToUpper(m.def.Title)
	}

	if m.loading {
		return renderPage(title, gate.LoadingText, "esc: back")
	}
	if m.form == nil {
		return renderPage(title, renderError(m.errMsg), "esc: back")
	}

	body := m.renderForm()
	hotKeys := "esc: back │ tab: next field │ ←/→: choose │ space: toggle │ ctrl+s: submit"

	if m.def.ClientsOnly {
		state := m.session.CurrentSession()
		body = gate.Render(state, body, m.location())
		if m.gated() {
			hotKeys = "esc: back │ 1-3: choose action"
		}
	}

	return renderPage(title, body+renderError(m.errMsg), hotKeys)
}

func (m *FormModel) location() string {
	return formLocation(m.def.Type)
}

func (m *FormModel) gated() bool {
	return m.def.ClientsOnly && gate.Decide(m.session.CurrentSession()) != gate.ViewClient
}

func (m *FormModel) load(def models.FormDefinition) error {
	form, err := forms.FromDefinition(def, m.submitter.ForWithMetadata(def.Type, submissionMetadata))
	if err != nil {
		return err
	}

	m.def = def
	m.form = form
	m.inputs = m.inputs[:0]
	m.focus = 0

	for _, f := range form.Fields() {
		if f.Kind.IsStructural() {
			continue
		}
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.Width = halfColumnWidth - 4
		in.CharLimit = validators.MaxShortFieldLength
		if f.Kind == models.FieldTextarea {
			in.Width = 2*halfColumnWidth - 4
			in.CharLimit = validators.MaxMessageLength
		}
		m.inputs = append(m.inputs, fieldInput{field: f, input: in})
	}
	m.focusCurrent()

	return nil
}

func (m *FormModel) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.submitting {
		return nil
	}

	switch {
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down) && !m.focusIsText():
		m.move(1)
		return nil
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up) && !m.focusIsText():
		m.move(-1)
		return nil
	case key.Matches(msg, keys.enter):
		if m.focus == len(m.inputs)-1 {
			return m.submit()
		}
		m.move(1)
		return nil
	}

	if len(m.inputs) == 0 {
		return nil
	}
	current := &m.inputs[m.focus]

	switch current.field.Kind {
	case models.FieldSelect:
		switch {
		case key.Matches(msg, keys.right):
			m.cycleOption(current.field, 1)
		case key.Matches(msg, keys.left):
			m.cycleOption(current.field, -1)
		}
		return nil
	case models.FieldCheckbox:
		if key.Matches(msg, keys.toggle) {
			v, _ := m.form.Value(current.field.ID)
			checked, _ := v.(bool)
			if err := m.form.SetChecked(current.field.ID, !checked); err != nil {
				m.errMsg = err.Error()
			}
		}
		return nil
	}

	var cmd tea.Cmd
	current.input, cmd = current.input.Update(msg)
	if err := m.form.Set(current.field.ID, current.input.Value()); err != nil {
		m.errMsg = err.Error()
	}
	return cmd
}

func (m *FormModel) handleGateKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, keys.action) {
		return nil
	}

	state := m.session.CurrentSession()
	card, ok := gate.CardFor(gate.Decide(state), state, m.location())
	if !ok {
		return nil
	}

	i := int(msg.String()[0] - '1')
	if i < 0 || i >= len(card.Action) {
		return nil
	}
	action := card.Action[i]

	switch action.Kind {
	case gate.ActionLogout:
		return m.cmdSignOut("")
	case gate.ActionSwitchAccount:
		return m.cmdSignOut(action.Href)
	default:
		return navigate(action.Href)
	}
}

func (m *FormModel) submit() tea.Cmd {
	if err := m.form.Validate(); err != nil {
		m.errMsg = missingFieldsMessage(m.form, err)
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	form := m.form
	return func() tea.Msg {
		ok, err := form.Submit(ctx)
		return formSubmittedMsg{ok: ok, err: err}
	}
}

func (m *FormModel) cycleOption(field models.FieldDescriptor, step int) {
	v, _ := m.form.Value(field.ID)
	current, _ := v.(string)

	// "" is the neutral choice before the first option.
	choices := append([]string{""}, field.Options...)
	i := slices.Index(choices, current)
	i = (i + step + len(choices)) % len(choices)

	if err := m.form.Set(field.ID, choices[i]); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *FormModel) move(step int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].input.Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.focusCurrent()
}

func (m *FormModel) focusCurrent() {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].input.Focus()
}

func (m *FormModel) focusIsText() bool {
	if len(m.inputs) == 0 {
		return false
	}
	kind := m.inputs[m.focus].field.Kind
	return kind == models.FieldText || kind == models.FieldTextarea
}

// syncInputs copies the form values back into the text inputs, e.g. after a
// successful submit reset the form.
func (m *FormModel) syncInputs() {
	for i := range m.inputs {
		v, _ := m.form.Value(m.inputs[i].field.ID)
		s, _ := v.(string)
		m.inputs[i].input.SetValue(s)
	}
}

func (m *FormModel) renderForm() string {
	if m.form.Empty() {
		return m.form.Placeholder()
	}

	var (
		b    strings.Builder
		half []string
	)
	flush := func() {
		if len(half) == 0 {
			return
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, half...))
		b.WriteString("\n")
		half = half[:0]
	}

	inputIdx := 0
	for _, f := range m.form.Fields() {
		var cell string
		switch f.Kind {
		case models.FieldHeading:
			flush()
			b.WriteString("\n")
			b.WriteString(titleStyle.Render(f.Label))
			b.WriteString("\n")
			continue
		case models.FieldSection:
			flush()
			b.WriteString("\n")
			b.WriteString(f.Label)
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(strings.Repeat("─", lipgloss.Width(f.Label))))
			b.WriteString("\n")
			continue
		default:
			cell = m.renderField(m.inputs[inputIdx], inputIdx == m.focus)
			inputIdx++
		}

		if f.Width == models.WidthHalf {
			half = append(half, lipgloss.NewStyle().Width(halfColumnWidth).Render(cell))
			if len(half) == 2 {
				flush()
			}
			continue
		}
		flush()
		b.WriteString(cell)
		b.WriteString("\n")
	}
	flush()

	if m.submitting {
		b.WriteString("\n[Submitting...]")
	} else {
		b.WriteString("\n[Submit]")
	}

	return strings.TrimLeft(b.String(), "\n")
}

func (m *FormModel) renderField(fi fieldInput, focused bool) string {
	f := fi.field
	label := f.Label
	if f.Required {
		label += " *"
	}

	v, _ := m.form.Value(f.ID)

	switch f.Kind {
	case models.FieldCheckbox:
		mark := "[ ]"
		if checked, _ := v.(bool); checked {
			mark = "[x]"
		}
		return cursor(focused) + " " + mark + " " + label
	case models.FieldSelect:
		choice, _ := v.(string)
		if choice == "" {
			choice = "choose"
		}
		return cursor(focused) + " " + label + "\n  ‹ " + choice + " ›"
	default:
		return cursor(focused) + " " + label + "\n  " + fi.input.View()
	}
}

// missingFieldsMessage lists the labels of the required fields left empty.
func missingFieldsMessage(form *forms.Form, err error) string {
	if !errors.Is(err, forms.ErrRequiredField) {
		return humanizeError(err)
	}

	missing := forms.MissingRequired(form.Fields(), form.Values())
	labels := make([]string, 0, len(missing))
	for _, f := range form.Fields() {
		if slices.Contains(missing, f.ID) {
			labels = append(labels, f.Label)
		}
	}
	return "Required: " + strings.Join(labels, ", ")
}

func (m *FormModel) cmdGetForm(formType string) tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		def, err := portal.GetForm(ctx, formType)
		return formLoadedMsg{def: def, err: err}
	}
}

func (m *FormModel) cmdSignOut(then string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		if err := session.SignOut(ctx); err != nil {
			return authResultMsg{err: err}
		}
		if then == "" {
			return nil
		}
		return route(then)
	}
}

// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/openderm/lesionsnap/internal/service"
	"github.com/openderm/lesionsnap/models"
)

// Form field order. Every field is a free-text input; the numeric and
// boolean ones are parsed on save.
const (
	fieldPatientID = iota
	fieldAgeRange
	fieldSex
	fieldMonkTone
	fieldFitzpatrick
	fieldRace
	fieldAnatomicSite
	fieldDiagnosis
	fieldBiopsied
	fieldLesionID
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Patient ID",
	"Age range",
	"Sex",
	"Monk skin tone (1-10)",
	"Fitzpatrick (I-VI)",
	"Self-reported race",
	"Anatomic site",
	"Clinical diagnosis",
	"Biopsied (true/false)",
	"Lesion ID",
}

type formModel struct {
	ctx       context.Context
	sequencer service.CaptureSequencer

	inputs []textinput.Model
	focus  int

	saving bool
	errMsg string
}

func newFormModel(ctx context.Context, sequencer service.CaptureSequencer) *formModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Focus()

	m := &formModel{
		ctx:       ctx,
		sequencer: sequencer,
		inputs:    inputs,
	}
	m.prefill(sequencer.Form())

	return m
}

// prefill restores a previously saved form into the inputs.
func (m *formModel) prefill(form models.IntakeForm) {
	m.inputs[fieldPatientID].SetValue(form.PatientID)
	m.inputs[fieldAgeRange].SetValue(form.AgeRange)
	m.inputs[fieldSex].SetValue(form.Sex)
	if form.MonkTone != nil {
		m.inputs[fieldMonkTone].SetValue(strconv.Itoa(*form.MonkTone))
	}
	m.inputs[fieldFitzpatrick].SetValue(form.Fitzpatrick)
	m.inputs[fieldRace].SetValue(form.Race)
	m.inputs[fieldAnatomicSite].SetValue(form.AnatomicSite)
	m.inputs[fieldDiagnosis].SetValue(form.ClinicalDiagnosis)
	if form.Biopsied {
		m.inputs[fieldBiopsied].SetValue("true")
	}
	if form.LesionID != nil {
		m.inputs[fieldLesionID].SetValue(strconv.FormatInt(*form.LesionID, 10))
	}
}

func (m *formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "capture"} }

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.save()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *formModel) setFocus(focus int) {
	if focus < 0 {
		focus = fieldCount - 1
	}
	if focus >= fieldCount {
		focus = 0
	}

	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
}

// save parses the inputs into an intake form and persists it through the
// sequencer. Parse failures stay on the form page.
func (m *formModel) save() tea.Cmd {
	form, err := m.toForm()
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.saving = true
	m.errMsg = ""
	return func() tea.Msg {
		return formSavedMsg{err: m.sequencer.SetForm(m.ctx, form)}
	}
}

func (m *formModel) toForm() (models.IntakeForm, error) {
	form := models.IntakeForm{
		PatientID:         strings.TrimSpace(m.inputs[fieldPatientID].Value()),
		AgeRange:          strings.TrimSpace(m.inputs[fieldAgeRange].Value()),
		Sex:               strings.TrimSpace(m.inputs[fieldSex].Value()),
		Fitzpatrick:       strings.TrimSpace(m.inputs[fieldFitzpatrick].Value()),
		Race:              strings.TrimSpace(m.inputs[fieldRace].Value()),
		AnatomicSite:      strings.TrimSpace(m.inputs[fieldAnatomicSite].Value()),
		ClinicalDiagnosis: strings.TrimSpace(m.inputs[fieldDiagnosis].Value()),
	}

	if form.PatientID == "" {
		return models.IntakeForm{}, fmt.Errorf("patient ID is required")
	}
	if form.AnatomicSite == "" {
		return models.IntakeForm{}, fmt.Errorf("anatomic site is required")
	}
	if form.ClinicalDiagnosis == "" {
		return models.IntakeForm{}, fmt.Errorf("clinical diagnosis is required")
	}

	if v := strings.TrimSpace(m.inputs[fieldMonkTone].Value()); v != "" {
		tone, err := strconv.Atoi(v)
		if err != nil || tone < 1 || tone > 10 {
			return models.IntakeForm{}, fmt.Errorf("monk skin tone must be 1-10")
		}
		form.MonkTone = &tone
	}

	if v := strings.TrimSpace(m.inputs[fieldBiopsied].Value()); v != "" {
		biopsied, err := strconv.ParseBool(v)
		if err != nil {
			return models.IntakeForm{}, fmt.Errorf("biopsied must be true or false")
		}
		form.Biopsied = biopsied
	}

	if v := strings.TrimSpace(m.inputs[fieldLesionID].Value()); v != "" {
		lesionID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || lesionID <= 0 {
			return models.IntakeForm{}, fmt.Errorf("lesion ID must be a positive integer")
		}
		form.LesionID = &lesionID
	}

	return form, nil
}

func (m *formModel) View() string {
	var b strings.Builder

	for i, input := range m.inputs {
		cursor := " "
		if i == m.focus {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-22s [%s]\n", cursor, fieldLabels[i]+":", input.View()))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("ERROR: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.saving {
		b.WriteString("\nsaving...\n")
	}

	return renderPage("PATIENT INTAKE", strings.TrimRight(b.String(), "\n"), "enter: continue to capture │ tab/↑/↓: fields")
}

// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lbsformat/lbs-go/internal/telemetry"
)

var (
	paneBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	detailTitle    = lipgloss.NewStyle().Bold(true).Underline(true)
	presentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	defaultedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
)

// readingItem adapts a decoded Reading to bubbles/list's Item
// interface for display in the left-hand list.
type readingItem struct {
	index   int
	reading telemetry.Reading
}

func (it readingItem) Title() string {
	loc := it.reading.Location
	if loc == "" {
		loc = "(no location)"
	}
	return fmt.Sprintf("#%d  %s", it.index, loc)
}

func (it readingItem) Description() string {
	return fmt.Sprintf("status: %s  value: %.2f", it.reading.Status, it.reading.Value)
}

func (it readingItem) FilterValue() string { return it.Title() }

type model struct {
	list   list.Model
	width  int
	height int
}

func newModel(readings []telemetry.Reading) model {
	items := make([]list.Item, len(readings))
	for i, r := range readings {
		items[i] = readingItem{index: i, reading: r}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("%d readings", len(readings))
	return model{list: l}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listWidth := m.width / 3
		m.list.SetSize(listWidth, m.height-2)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	left := paneBorder.Width(m.width/3 - 2).Height(m.height - 4).Render(m.list.View())
	right := paneBorder.Width(2*m.width/3 - 4).Height(m.height - 4).Render(m.detailView())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// fieldValue renders the current value of one Reading field by name,
// for display next to its wire-presence marker.
func fieldValue(r telemetry.Reading, name string) string {
	switch name {
	case "device_id":
		return r.DeviceID.String()
	case "location":
		return r.Location
	case "value":
		return fmt.Sprintf("%.4f", r.Value)
	case "threshold":
		if !r.Threshold.Valid {
			return "(none)"
		}
		return fmt.Sprintf("%.4f", r.Threshold.Value)
	case "tags":
		return strings.Join(r.Tags, ", ")
	case "labels":
		parts := make([]string, 0, len(r.Labels))
		for k, v := range r.Labels {
			parts = append(parts, fmt.Sprintf("%s=%s", k, v))
		}
		return strings.Join(parts, ", ")
	case "uptime":
		return r.Uptime.String()
	case "recorded_at":
		return r.RecordedAt.String()
	case "source_ip":
		return r.SourceIP.String()
	case "valid_range":
		return fmt.Sprintf("[%v, %v)", r.ValidRange.Start, r.ValidRange.End)
	case "note":
		return r.Note.Value
	case "samples":
		if r.Samples == nil {
			return "(none)"
		}
		return fmt.Sprintf("%d samples", r.Samples.Len())
	case "status":
		return r.Status.String()
	default:
		return ""
	}
}

// detailView renders the selected reading's fields, marking each one
// as read off the wire or left at its declared default — a direct,
// visual demonstration of the format's default-omission property.
func (m model) detailView() string {
	item, ok := m.list.SelectedItem().(readingItem)
	if !ok {
		return "no reading selected"
	}
	r := item.reading
	var b strings.Builder
	fmt.Fprintln(&b, detailTitle.Render(fmt.Sprintf("Reading #%d", item.index)))
	for _, f := range telemetry.FieldOrder() {
		marker := defaultedStyle.Render("(default)")
		if r.Present(f.ID) {
			marker = presentStyle.Render("(wire)")
		}
		fmt.Fprintf(&b, "%-12s %-8s %s\n", f.Name+":", marker, fieldValue(r, f.Name))
	}
	return b.String()
}

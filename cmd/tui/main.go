package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/medigraph/symptomgraph/pkg/config"
	"github.com/medigraph/symptomgraph/pkg/dataset"
	"github.com/medigraph/symptomgraph/pkg/diagnosis"
	"github.com/medigraph/symptomgraph/pkg/graph"
	"github.com/medigraph/symptomgraph/pkg/logging"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(2).
			MarginTop(1)

	selectedCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00FF00")).
				MarginLeft(2)

	resultsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(1, 2).
			MarginLeft(2)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			MarginLeft(2).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true).
			MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	selectView view = iota
	resultsView
)

type keyMap struct {
	Toggle   key.Binding
	Diagnose key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle symptom"),
	),
	Diagnose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "diagnose"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to selection"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Diagnose, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Diagnose}, {k.Back, k.Quit}}
}

type symptomItem struct {
	name     string
	selected bool
}

func (i symptomItem) Title() string {
	checkbox := "[ ]"
	if i.selected {
		checkbox = "[x]"
	}
	return fmt.Sprintf("%s %s", checkbox, strings.ReplaceAll(i.name, "_", " "))
}

func (i symptomItem) Description() string { return "" }
func (i symptomItem) FilterValue() string { return i.name }

type model struct {
	engine   *diagnosis.Engine
	view     view
	symptoms list.Model
	results  table.Model
	ranked   []diagnosis.Result
	selected map[string]bool
	err      error
	help     help.Model
	width    int
	height   int
}

func newModel(engine *diagnosis.Engine) model {
	names := engine.Graph().VertexNames(graph.KindSymptom)
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, symptomItem{name: name})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	symptomList := list.New(items, delegate, 0, 0)
	symptomList.Title = "Select your symptoms"
	symptomList.SetShowStatusBar(false)
	symptomList.SetShowHelp(false)

	return model{
		engine:   engine,
		view:     selectView,
		symptoms: symptomList,
		selected: make(map[string]bool),
		help:     help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.symptoms.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		// Leave keys alone while the list filter input is active
		if m.view == selectView && m.symptoms.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Toggle):
			if m.view == selectView {
				m.toggleCurrent()
				return m, nil
			}

		case key.Matches(msg, keys.Diagnose):
			if m.view == selectView {
				m.runDiagnosis()
				return m, nil
			}

		case key.Matches(msg, keys.Back):
			if m.view == resultsView {
				m.view = selectView
				m.err = nil
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.view {
	case selectView:
		m.symptoms, cmd = m.symptoms.Update(msg)
	case resultsView:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m *model) toggleCurrent() {
	item, ok := m.symptoms.SelectedItem().(symptomItem)
	if !ok {
		return
	}
	item.selected = !item.selected
	m.selected[item.name] = item.selected
	m.symptoms.SetItem(m.symptoms.Index(), item)
}

func (m *model) runDiagnosis() {
	chosen := make([]string, 0, len(m.selected))
	for name, on := range m.selected {
		if on {
			chosen = append(chosen, name)
		}
	}

	ranked, err := m.engine.Diagnose(chosen)
	if err != nil {
		m.err = err
		m.view = resultsView
		return
	}

	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Disease", Width: 32},
		{Title: "Probability", Width: 12},
	}
	rows := make([]table.Row, 0, len(ranked))
	for i, result := range ranked {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			strings.ReplaceAll(result.Disease, "_", " "),
			fmt.Sprintf("%.2f%%", result.Probability),
		})
	}

	m.ranked = ranked
	m.err = nil
	m.results = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 12)),
	)
	m.view = resultsView
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("symptomgraph — preliminary disease hypotheses"))
	b.WriteString("\n")

	switch m.view {
	case selectView:
		count := 0
		for _, on := range m.selected {
			if on {
				count++
			}
		}
		b.WriteString(selectedCountStyle.Render(fmt.Sprintf("%d selected (two or more needed)", count)))
		b.WriteString("\n")
		b.WriteString(m.symptoms.View())

	case resultsView:
		if m.err != nil {
			b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		} else if len(m.ranked) == 0 {
			b.WriteString(detailStyle.Render("No correlated disease found for the selected symptoms."))
		} else {
			b.WriteString(resultsBoxStyle.Render(m.results.View()))
			b.WriteString("\n")
			b.WriteString(m.detailView())
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(keys)))
	return b.String()
}

// detailView shows description and precautions for the highlighted row.
func (m model) detailView() string {
	cursor := m.results.Cursor()
	if cursor < 0 || cursor >= len(m.ranked) {
		return ""
	}
	result := m.ranked[cursor]

	var b strings.Builder
	b.WriteString(result.Description)
	if len(result.Precautions) > 0 {
		b.WriteString("\n\nPrecautions:")
		for _, p := range result.Precautions {
			b.WriteString("\n  • " + p)
		}
	}
	return detailStyle.Render(b.String())
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	g, c, err := dataset.LoadFiles(cfg.Data, logging.NewNopLogger())
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	engine := diagnosis.NewEngine(g, c, logging.NewNopLogger())

	program := tea.NewProgram(newModel(engine), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}

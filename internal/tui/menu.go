// Package tui implements the interactive numbered menu launched by
// `outlay menu`. One Bubble Tea program hosts the menu, huh input forms,
// and result screens.
package tui

import (
	"fmt"
	"strings"

	"outlay/internal/config"
	"outlay/internal/model"
	"outlay/internal/store"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Storage is the slice of the store the menu needs. *store.Store satisfies
// it; tests use a fake.
type Storage interface {
	Add(name string, amount float64, category, note, date string) (int64, error)
	Update(id int64, name string, amount float64, category, note, date string) (int64, error)
	DeleteBy(sel store.Selector) (int64, error)
	ByID(id int64) (*model.Expense, error)
	All() ([]model.Expense, error)
	ByCategory(category string) ([]model.Expense, error)
	BetweenDates(start, end string) ([]model.Expense, error)
	SearchName(keyword string) ([]model.Expense, error)
	DistinctCategories() ([]string, error)
	Count() (int, error)
}

type viewState int

const (
	stateMenu viewState = iota
	stateForm
	stateTable
	stateResult
)

// menuOptions are the numbered operations; index matches the digit key.
var menuOptions = []string{
	"Quit",
	"Add expense",
	"List expenses",
	"Update expense",
	"Delete expenses",
	"Search by name",
	"List by category",
	"List between dates",
	"Spending report",
	"Export / import CSV",
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AA99F"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA99F"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFCF0"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6F6E69"))
	errStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#D14D41"))
)

// App is the root Bubble Tea model for the menu.
type App struct {
	st  Storage
	cfg config.Config

	state  viewState
	cursor int

	form   *huh.Form
	action int // menu index the active form belongs to

	// inputs is shared by pointer: Bubble Tea copies the model on every
	// Update, and the huh fields hold pointers into this struct.
	inputs *formInputs

	tbl      table.Model
	tblTitle string

	result string
	err    error

	width  int
	height int
}

// formInputs holds the string values bound into huh fields.
type formInputs struct {
	id       string
	name     string
	amount   string
	category string
	note     string
	date     string
	start    string
	end      string
	keyword  string
	selector string // delete: "id" | "name" | "date"
	value    string // delete selector value
	path     string
	mode     string // csv: "export" | "append" | "upsert"
}

// New builds the menu app over an open store.
func New(st Storage, cfg config.Config) App {
	return App{st: st, cfg: cfg, cursor: 1}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = ws.Width, ws.Height
	}

	switch a.state {
	case stateForm:
		return a.updateForm(msg)
	case stateTable:
		return a.updateTable(msg)
	case stateResult:
		if _, ok := msg.(tea.KeyMsg); ok {
			a.state = stateMenu
			a.result = ""
			a.err = nil
		}
		return a, nil
	default:
		return a.updateMenu(msg)
	}
}

func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "up", "k":
		a.cursor--
		if a.cursor < 0 {
			a.cursor = len(menuOptions) - 1
		}
	case "down", "j":
		a.cursor = (a.cursor + 1) % len(menuOptions)
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		a.cursor = int(key.String()[0] - '0')
		return a.choose(a.cursor)
	case "enter":
		return a.choose(a.cursor)
	}
	return a, nil
}

func (a App) choose(option int) (tea.Model, tea.Cmd) {
	switch option {
	case 0:
		return a, tea.Quit
	case 2: // list needs no input
		return a.showList("All Expenses", a.st.All)
	case 8:
		return a.showReport()
	default:
		a.inputs = &formInputs{mode: "export", selector: "id"}
		a.form = a.buildForm(option)
		a.action = option
		a.state = stateForm
		return a, a.form.Init()
	}
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return a, tea.Quit
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.submit()
	case huh.StateAborted:
		a.state = stateMenu
		return a, nil
	}
	return a, cmd
}

func (a App) updateTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q", "esc", "enter":
			a.state = stateMenu
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.tbl, cmd = a.tbl.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	switch a.state {
	case stateForm:
		return "\n" + a.form.View()
	case stateTable:
		var b strings.Builder
		b.WriteString("\n  ")
		b.WriteString(menuTitleStyle.Render(a.tblTitle))
		b.WriteString("\n\n")
		b.WriteString(a.tbl.View())
		b.WriteString("\n\n  ")
		b.WriteString(menuDimStyle.Render("j/k to scroll, q to go back"))
		b.WriteString("\n")
		return b.String()
	case stateResult:
		var b strings.Builder
		b.WriteString("\n")
		if a.err != nil {
			b.WriteString("  " + errStyle.Render(a.err.Error()) + "\n")
		}
		if a.result != "" {
			b.WriteString(a.result)
		}
		b.WriteString("\n  " + menuDimStyle.Render("Press any key to return to the menu") + "\n")
		return b.String()
	default:
		return a.viewMenu()
	}
}

func (a App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(menuTitleStyle.Render("OUTLAY"))
	count, err := a.st.Count()
	if err == nil {
		b.WriteString(menuDimStyle.Render(fmt.Sprintf("  %d expense(s) on record", count)))
	}
	b.WriteString("\n\n")

	for i, opt := range menuOptions {
		line := fmt.Sprintf("[%d] %s", i, opt)
		if i == a.cursor {
			b.WriteString("  " + menuCursorStyle.Render("> "+line))
		} else {
			b.WriteString("    " + menuItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(menuDimStyle.Render("j/k or digits to choose, Enter to run, q to quit"))
	b.WriteString("\n")
	return b.String()
}

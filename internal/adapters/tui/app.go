package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offjournal/internal/adapters/tui/styles"
	"offjournal/internal/adapters/tui/views"
	"offjournal/internal/frontend"
	"offjournal/internal/ports"
)

// Options configure the TUI
type Options struct {
	Frontend frontend.Options
	// EntryPath resolves an entry id to its file for the external editor.
	// Opening entries externally is disabled when nil.
	EntryPath func(id string) (string, error)
	Editor    ports.EditorOpener
	Now       func() time.Time
}

// App is the main TUI application model
type App struct {
	ctrl    *frontend.Controller
	mailbox *Mailbox
	opts    Options

	prompts  *views.PromptModel
	diary    *views.DiaryModel
	planner  *views.PlannerModel
	help     *views.HelpModel
	showHelp bool
	spinner  spinner.Model

	vm     frontend.ViewModel
	width  int
	height int
}

// NewApp creates a new TUI application. Responses for b must be delivered
// through mb.Deliver.
func NewApp(b frontend.Bridge, mb *Mailbox, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	prompts := views.NewPromptModel()
	ctrl := frontend.NewController(b, prompts, mb, opts.Frontend)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Secondary)

	return &App{
		ctrl:    ctrl,
		mailbox: mb,
		opts:    opts,
		prompts: prompts,
		diary:   views.NewDiaryModel(ctrl),
		planner: views.NewPlannerModel(ctrl, opts.Now()),
		help:    views.NewHelpModel(),
		spinner: sp,
	}
}

// Controller exposes the front-end state machine driving the app
func (a *App) Controller() *frontend.Controller {
	return a.ctrl
}

// Init loads the diary list and starts listening for responses
func (a *App) Init() tea.Cmd {
	a.ctrl.Start()
	a.sync()
	return tea.Batch(a.mailbox.wait(), a.spinner.Tick)
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.sync()
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.diary.SetSize(msg.Width, msg.Height-4)
		a.planner.SetSize(msg.Width, msg.Height-4)
		a.help.SetSize(msg.Width, msg.Height)
		return nil

	case responseMsg:
		a.ctrl.Receive(msg)
		return a.mailbox.wait()

	case timerMsg:
		msg.fire()
		return a.mailbox.wait()

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return cmd

	case views.CloseHelpMsg:
		a.showHelp = false
		return nil

	case views.CopiedMsg:
		a.diary.CopyResult(msg)
		return nil

	case views.OpenExternalMsg:
		return a.openEditor(msg.EntryID)

	case editorFinishedMsg:
		if msg.err != nil {
			a.prompts.Alert(fmt.Sprintf("Editor failed: %v", msg.err))
			return nil
		}
		// pick up what was written outside
		if a.vm.EntryID == msg.entryID {
			a.ctrl.GetContent(msg.entryID)
		}
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.active().Update(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return a.quit()
	}
	if a.prompts.HandleKeyMsg(msg) {
		return nil
	}
	if a.showHelp {
		return a.help.Update(msg)
	}

	view := a.active()
	if !view.Capturing() {
		switch msg.String() {
		case "q":
			return a.quit()
		case "?":
			a.showHelp = true
			return nil
		case "tab":
			if a.vm.View == frontend.ViewDiary {
				a.ctrl.SwitchView(frontend.ViewPlanner)
			} else {
				a.ctrl.SwitchView(frontend.ViewDiary)
			}
			return nil
		}
	}
	return view.Update(msg)
}

// quit flushes unsaved text before leaving. The host closes the bridge
// after the program returns, which drains the queued save.
func (a *App) quit() tea.Cmd {
	if a.vm.Dirty {
		a.ctrl.Save()
	}
	return tea.Quit
}

type pane interface {
	Update(msg tea.Msg) tea.Cmd
	Capturing() bool
}

func (a *App) active() pane {
	if a.vm.View == frontend.ViewPlanner {
		return a.planner
	}
	return a.diary
}

// sync recomputes the view model and pushes it into the widgets
func (a *App) sync() {
	a.vm = frontend.Project(a.ctrl.Session())
	a.diary.Sync(a.vm)
	a.planner.Sync(a.vm)
}

type editorFinishedMsg struct {
	entryID string
	err     error
}

func (a *App) openEditor(id string) tea.Cmd {
	if a.opts.Editor == nil || a.opts.EntryPath == nil {
		a.prompts.Alert("No external editor configured.")
		return nil
	}
	if a.vm.Dirty {
		a.prompts.Alert("Save the entry before opening it in an external editor.")
		return nil
	}

	path, err := a.opts.EntryPath(id)
	if err != nil {
		a.prompts.Alert(err.Error())
		return nil
	}
	cmd, err := a.opts.Editor.Command(path)
	if err != nil {
		a.prompts.Alert(err.Error())
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{entryID: id, err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	if a.showHelp {
		return a.help.View()
	}

	var body string
	if a.vm.View == frontend.ViewPlanner {
		body = a.planner.View(a.vm, a.spinner.View())
	} else {
		body = a.diary.View(a.vm, a.spinner.View())
	}

	if modal := a.prompts.View(); modal != "" {
		body = lipgloss.Place(max(a.width-4, lipgloss.Width(modal)), max(a.height-4, lipgloss.Height(modal)),
			lipgloss.Center, lipgloss.Center, modal)
	}

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.renderTabs(),
		body,
		a.renderStatus(),
	))
}

func (a *App) renderTabs() string {
	diary, planner := styles.Tab, styles.Tab
	if a.vm.View == frontend.ViewPlanner {
		planner = styles.TabActive
	} else {
		diary = styles.TabActive
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		diary.Render("Diary"),
		planner.Render("Planner"),
	) + "\n"
}

func (a *App) renderStatus() string {
	left := styles.StatusKey.Render(a.vm.View.String())
	text := styles.StatusText.Render("? help • tab switch • q quit")
	if a.vm.Status != "" {
		if a.vm.StatusPersistent {
			text = styles.StatusPending.Render(a.vm.Status)
		} else {
			text = styles.Success.Render(a.vm.Status)
		}
	}
	return "\n" + styles.StatusBar.Width(max(a.width-4, 0)).Render(left+text)
}

package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/router"
	"github.com/abhisek/vocabdrill/internal/screen"
	"github.com/abhisek/vocabdrill/internal/screens/home"
	"github.com/abhisek/vocabdrill/internal/screens/modes"
	"github.com/abhisek/vocabdrill/internal/selfupdate"
	"github.com/abhisek/vocabdrill/internal/session"
	"github.com/abhisek/vocabdrill/internal/ui/layout"
	"github.com/abhisek/vocabdrill/internal/vocab"
)

// Options configures the TUI.
type Options struct {
	Deps modes.Deps

	// Date preselects the practice date; empty means today.
	Date string

	// Mode, when set, opens that practice session straight away.
	Mode session.Mode

	// Version enables the background release check when it is a release
	// build and Checker is set.
	Version string
	Checker *selfupdate.Checker

	Now func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	home   *home.HomeScreen
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen at the bottom
// of the stack.
func newAppModel(opts Options) AppModel {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	homeScreen := home.New(opts.Deps, opts.Date, now())

	r := router.New(homeScreen)
	r.OnChange(func(s screen.Screen) {
		log.Printf("[app] screen %q (depth %d)", s.Title(), r.Depth())
	})

	return AppModel{
		router: r,
		home:   homeScreen,
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.opts.Mode != "" {
		next := m.opts.Deps.Screen(m.opts.Mode, m.home.Date())
		cmds = append(cmds, func() tea.Msg { return router.PushScreenMsg{Screen: next} })
	}
	if m.opts.Checker != nil {
		cmds = append(cmds, checkForUpdate(m.opts.Checker, m.opts.Version))
	}
	return tea.Batch(cmds...)
}

func checkForUpdate(checker *selfupdate.Checker, version string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			log.Printf("[app] update check: %v", err)
			return nil
		}
		if !result.UpdateAvailable {
			return nil
		}
		return home.UpdateAvailableMsg{Latest: result.LatestVersion}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case home.UpdateAvailableMsg:
		// Delivered to home even when another screen is on top.
		_, cmd := m.home.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "q":
			if !capturing(m.router.Active()) {
				return m, tea.Quit
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func capturing(s screen.Screen) bool {
	c, ok := s.(screen.Capturer)
	return ok && c.CapturingInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, date := "", ""
	if active != nil {
		title = active.Title()
		if d, ok := active.(screen.Dated); ok {
			date = vocab.DisplayDate(d.Date())
		}
	}

	header := layout.RenderHeader(title, date, m.width)
	footer := layout.RenderFooter(footerHints(active, m.router.Depth()), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(0, m.height-headerHeight-footerHeight)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func footerHints(active screen.Screen, depth int) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if depth > 1 {
		hints = []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Back"}}
	} else {
		hints = []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}, {Key: "Enter", Description: "Select"}}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := newAppModel(opts)
	defer m.router.Close()

	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

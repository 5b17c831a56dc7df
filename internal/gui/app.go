package gui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/linguist/internal"
	"codeberg.org/snonux/linguist/internal/language"
	"codeberg.org/snonux/linguist/internal/logging"
	"codeberg.org/snonux/linguist/internal/session"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	sourceSelect  *widget.Select
	targetSelect  *widget.Select
	inputLabel    *widget.Label
	inputEntry    *CustomMultiLineEntry
	outputLabel   *widget.Label
	outputEntry   *widget.Entry
	errorLabel    *widget.Label
	statusLabel   *widget.Label
	historyStatus *widget.Label
	historyList   *widget.List
	logViewer     *LogViewer

	// Buttons
	translateButton *ttwidget.Button
	micButton       *ttwidget.Button
	swapButton      *ttwidget.Button
	themeButton     *ttwidget.Button
	helpButton      *ttwidget.Button
	prevButton      *ttwidget.Button
	nextButton      *ttwidget.Button

	// Session
	ctrl         *session.Controller
	view         session.View
	historyIndex int
	inputEcho    echoFilter
	updating     bool // Set while a view is being applied to the widgets

	// Configuration
	config *Config
	logger *log.Logger

	// Background processing
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds GUI application configuration
type Config struct {
	Executor *session.Executor
	State    session.State
	Logger   *log.Logger
}

// DefaultConfig returns default GUI configuration. Without an executor
// the window still opens but every translation fails.
func DefaultConfig() *Config {
	return &Config{
		State:  session.NewState(false),
		Logger: logging.Discard(),
	}
}

// New creates a new GUI application
func New(config *Config) *Application {
	if config == nil {
		config = DefaultConfig()
	} else if config.Logger == nil {
		config.Logger = DefaultConfig().Logger
	}
	if config.State.SourceLanguage == "" {
		config.State = DefaultConfig().State
	}
	if config.Executor == nil {
		config.Executor = session.NewExecutor(nil, nil, nil, config.Logger)
	}

	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("org.codeberg.snonux.linguist")
	myApp.SetIcon(GetAppIcon())

	a := &Application{
		app:          myApp,
		config:       config,
		logger:       config.Logger,
		ctx:          ctx,
		cancel:       cancel,
		historyIndex: -1,
	}

	a.ctrl = session.NewController(config.State, config.Executor, config.Logger)

	a.setupUI()

	// Mirror the application log into the log tab
	a.logger.SetOutput(io.MultiWriter(os.Stderr, a.logViewer))

	a.applyView(session.Render(config.State))

	a.ctrl.Subscribe(func(s session.State) {
		view := session.Render(s)
		fyne.Do(func() {
			a.applyView(view)
		})
	})

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("%s v%s", session.Title, internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(900, 700))

	// Language row
	a.sourceSelect = widget.NewSelect(nil, func(label string) {
		if a.updating {
			return
		}
		if code, ok := language.ByName(label); ok {
			a.ctrl.Dispatch(session.SelectSource{Code: code})
		}
	})
	a.targetSelect = widget.NewSelect(nil, func(label string) {
		if a.updating {
			return
		}
		if code, ok := language.ByName(label); ok {
			a.ctrl.Dispatch(session.SelectTarget{Code: code})
		}
	})

	a.swapButton = ttwidget.NewButtonWithIcon("", iconFor("swap"), a.onSwap)
	a.themeButton = ttwidget.NewButtonWithIcon("", iconFor("moon"), a.onToggleTheme)
	a.helpButton = ttwidget.NewButton("?", a.onShowHotkeys)

	languageRow := container.NewBorder(
		nil, nil,
		nil,
		container.NewHBox(a.themeButton, a.helpButton),
		container.NewGridWithColumns(3,
			a.sourceSelect,
			container.NewCenter(a.swapButton),
			a.targetSelect,
		),
	)

	// Input section
	a.inputLabel = widget.NewLabel("")
	a.inputLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.inputEntry = NewCustomMultiLineEntry()
	a.inputEntry.SetPlaceHolder("Type or speak the text to translate...")
	a.inputEntry.SetMinRowsVisible(5)
	a.inputEntry.OnChanged = func(text string) {
		if a.updating {
			return
		}
		a.inputEcho.sent(text)
		a.ctrl.Dispatch(session.EditInput{Text: text})
	}
	a.inputEntry.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})
	a.inputEntry.SetOnSubmit(a.onTranslate)

	a.micButton = ttwidget.NewButtonWithIcon("", iconFor("mic"), a.onVoiceInput)
	a.translateButton = ttwidget.NewButton("", a.onTranslate)
	a.translateButton.Importance = widget.HighImportance

	inputSection := container.NewBorder(
		a.inputLabel,
		container.NewHBox(a.micButton, layout.NewSpacer(), a.translateButton),
		nil, nil,
		a.inputEntry,
	)

	// Output section
	a.outputLabel = widget.NewLabel("")
	a.outputLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.outputEntry = widget.NewMultiLineEntry()
	a.outputEntry.Wrapping = fyne.TextWrapWord
	a.outputEntry.SetMinRowsVisible(5)
	a.outputEntry.Disable() // Read-only

	a.errorLabel = widget.NewLabel("")
	a.errorLabel.Importance = widget.DangerImportance
	a.errorLabel.Wrapping = fyne.TextWrapWord

	outputSection := container.NewBorder(
		a.outputLabel,
		a.errorLabel,
		nil, nil,
		a.outputEntry,
	)

	translator := container.NewVBox(
		languageRow,
		widget.NewSeparator(),
		inputSection,
		outputSection,
	)

	// History and log tabs
	a.historyStatus = widget.NewLabel("")
	a.historyList = widget.NewList(
		func() int {
			return len(a.view.History)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(a.view.History) {
				return
			}
			row := a.view.History[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s  %s → %s", row.Languages, oneLine(row.Input), oneLine(row.Translated)))
		},
	)
	a.historyList.OnSelected = func(id widget.ListItemID) {
		if a.updating {
			return
		}
		a.selectHistory(id)
	}

	a.prevButton = ttwidget.NewButton("◀", a.onPrevHistory)
	a.nextButton = ttwidget.NewButton("▶", a.onNextHistory)

	historyTab := container.NewBorder(
		container.NewHBox(a.prevButton, a.nextButton, a.historyStatus),
		nil, nil, nil,
		a.historyList,
	)

	a.logViewer = NewLogViewer()

	tabs := container.NewAppTabs(
		container.NewTabItem("History", historyTab),
		container.NewTabItem("Log", a.logViewer),
	)

	a.statusLabel = widget.NewLabel("Ready")

	split := container.NewVSplit(container.NewPadded(translator), tabs)
	split.Offset = 0.6

	content := container.NewBorder(nil, a.statusLabel, nil, nil, split)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	a.helpButton.SetToolTip("Show hotkeys (h)")
	a.prevButton.SetToolTip("Previous translation (←)")
	a.nextButton.SetToolTip("Next translation (→)")

	a.window.SetOnClosed(func() {
		a.cancel()
		a.wg.Wait()
	})

	// Set up keyboard shortcuts
	a.setupKeyboardShortcuts()
}

// Run starts the controller and the GUI event loop
func (a *Application) Run() {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.ctrl.Run(a.ctx)
	}()
	a.ctrl.Dispatch(session.Init{})

	a.window.ShowAndRun()
}

// applyView pushes a rendered view into the widgets. Must run on the
// Fyne main goroutine.
func (a *Application) applyView(v session.View) {
	a.updating = true
	defer func() { a.updating = false }()

	prev := a.view
	a.view = v

	if v.Theme != prev.Theme {
		a.app.Settings().SetTheme(newVariantTheme(v.Theme))
	}

	applySelector(a.sourceSelect, v.Source)
	applySelector(a.targetSelect, v.Target)

	a.inputLabel.SetText(v.Input.Label)
	if v.Input.Text != prev.Input.Text && a.inputEcho.external(v.Input.Text) && a.inputEntry.Text != v.Input.Text {
		a.inputEntry.SetText(v.Input.Text)
	}

	a.outputLabel.SetText(v.Output.Label)
	if a.outputEntry.Text != v.Output.Text {
		a.outputEntry.SetText(v.Output.Text)
	}

	a.errorLabel.SetText(v.Error)
	if v.Error == "" {
		a.errorLabel.Hide()
	} else {
		a.errorLabel.Show()
	}

	applyButton(a.translateButton, v.Translate)
	applyButton(a.micButton, v.Mic)
	applyButton(a.swapButton, v.Swap)
	applyButton(a.themeButton, v.ThemeToggle)
	a.themeButton.SetIcon(iconFor(v.ThemeToggle.Icon))

	switch {
	case !v.Translate.Enabled:
		a.updateStatus(session.TranslatingSentinel)
	case v.Mic.Tooltip == "Listening...":
		a.updateStatus("Listening...")
	default:
		a.updateStatus("Ready")
	}

	a.updateHistory()
}

func applySelector(sel *widget.Select, s session.Selector) {
	labels := s.Labels()
	if len(sel.Options) != len(labels) {
		sel.Options = labels
		sel.Refresh()
	}
	sel.PlaceHolder = s.Label
	if i := s.Index(); i >= 0 && sel.SelectedIndex() != i {
		sel.SetSelectedIndex(i)
	}
}

func applyButton(b *ttwidget.Button, v session.Button) {
	if v.Label != "" && b.Text != v.Label {
		b.SetText(v.Label)
	}
	b.SetToolTip(v.Tooltip)
	if v.Enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

// Event handlers

func (a *Application) onTranslate() {
	if a.translateButton.Disabled() {
		return
	}
	a.ctrl.Dispatch(session.Translate{})
}

func (a *Application) onSwap() {
	a.ctrl.Dispatch(session.Swap{})
}

func (a *Application) onToggleTheme() {
	a.ctrl.Dispatch(session.ToggleTheme{})
}

func (a *Application) onVoiceInput() {
	if a.micButton.Disabled() {
		return
	}
	a.logger.Info("Listening for speech", "language", a.view.Source.Value)
	a.ctrl.Dispatch(session.VoiceInput{})
}

// onShowHotkeys shows the keyboard shortcuts dialog
func (a *Application) onShowHotkeys() {
	hotkeys := `[Project Page: https://codeberg.org/snonux/linguist](https://codeberg.org/snonux/linguist)

---

## Translation
**Ctrl+Enter** Translate (while typing)
**t** Translate
**s** Swap languages
**v** Voice input
**i** Focus input
**Esc** Unfocus field

## History
**←** Previous translation
**→** Next translation

## Appearance
**d** Toggle dark mode

## Help
**h** Show hotkeys
**c** Close dialog
**q** Quit application

---
Press **c** to close this dialog`

	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	paddedContent := container.NewPadded(content)

	scroll := container.NewScroll(paddedContent)
	scroll.SetMinSize(fyne.NewSize(500, 420))

	d := dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window)

	dialogOpen := true

	originalRuneHandler := a.window.Canvas().OnTypedRune()

	// Add temporary handler for 'c' to close dialog
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		if dialogOpen && (r == 'c' || r == 'C') {
			d.Hide()
			return
		}
		if originalRuneHandler != nil {
			originalRuneHandler(r)
		}
	})

	d.Show()

	// Restore original handlers when dialog closes
	d.SetOnClosed(func() {
		dialogOpen = false
		a.setupKeyboardShortcuts()
	})
}

func (a *Application) updateStatus(message string) {
	if a.statusLabel.Text != message {
		a.statusLabel.SetText(message)
	}
}

// setupKeyboardShortcuts installs the single-key shortcuts that apply
// while no text field has focus
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(nil)

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.window.Canvas().Unfocus()
			return
		}

		// Let focused fields receive their keys
		if a.window.Canvas().Focused() != nil {
			return
		}

		a.handleShortcutKey(ev.Name)
	})
}

// handleShortcutKey handles the actual shortcut action
func (a *Application) handleShortcutKey(key fyne.KeyName) {
	switch key {
	case fyne.KeyT:
		a.onTranslate()
	case fyne.KeyS:
		if !a.swapButton.Disabled() {
			a.onSwap()
		}
	case fyne.KeyV:
		a.onVoiceInput()
	case fyne.KeyI:
		a.window.Canvas().Focus(a.inputEntry)
	case fyne.KeyD:
		a.onToggleTheme()
	case fyne.KeyLeft:
		a.onPrevHistory()
	case fyne.KeyRight:
		a.onNextHistory()
	case fyne.KeyH:
		a.onShowHotkeys()
	case fyne.KeyQ:
		a.window.Close()
	}
}

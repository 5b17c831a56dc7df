package gui

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/linguist/internal/session"
)

// updateHistory refreshes the history list and navigation buttons
func (a *Application) updateHistory() {
	a.historyList.Refresh()

	switch {
	case a.view.HistoryLoading:
		a.historyStatus.SetText("Loading history...")
	case len(a.view.History) == 0:
		a.historyStatus.SetText("No translations yet")
	default:
		a.historyStatus.SetText(fmt.Sprintf("%d translations", len(a.view.History)))
	}

	// New translations are prepended, so a stale index points elsewhere
	if a.historyIndex >= len(a.view.History) {
		a.historyIndex = -1
	}

	a.updateNavigation()
}

// updateNavigation updates the navigation button states
func (a *Application) updateNavigation() {
	count := len(a.view.History)
	if count == 0 {
		a.prevButton.Disable()
		a.nextButton.Disable()
		return
	}

	// Newest entries come first, so "previous" walks towards older ones
	if a.historyIndex >= count-1 {
		a.prevButton.Disable()
	} else {
		a.prevButton.Enable()
	}
	if a.historyIndex <= 0 {
		a.nextButton.Disable()
	} else {
		a.nextButton.Enable()
	}
}

// onPrevHistory restores the next older translation
func (a *Application) onPrevHistory() {
	if a.historyIndex < len(a.view.History)-1 {
		a.selectHistory(a.historyIndex + 1)
	}
}

// onNextHistory restores the next newer translation
func (a *Application) onNextHistory() {
	if a.historyIndex > 0 {
		a.selectHistory(a.historyIndex - 1)
	}
}

// selectHistory restores a history entry into the translator
func (a *Application) selectHistory(index int) {
	if index < 0 || index >= len(a.view.History) {
		return
	}

	a.historyIndex = index
	a.ctrl.Dispatch(session.SelectHistory{Index: index})

	a.updating = true
	a.historyList.Select(index)
	a.historyList.ScrollTo(index)
	a.updating = false

	a.updateNavigation()
}

// oneLine collapses whitespace so multi-line text fits in a list row
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

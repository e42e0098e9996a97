package ui

import "paodiario/internal/notebook"

// SaveDraftMsg asks the notebook to save the current draft (ctrl+s).
type SaveDraftMsg struct{}

// DeleteSelectedMsg deletes the note selected in the notes pane (d/x/delete).
type DeleteSelectedMsg struct{}

// FocusNextMsg moves focus to the next pane (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves focus to the previous pane (shift+tab).
type FocusPrevMsg struct{}

// ShowToastMsg displays a transient notification.
type ShowToastMsg struct {
	Notification notebook.Notification
}

// dismissToastMsg removes the toast with the given ID once its time is up.
type dismissToastMsg struct {
	ID int
}

// Package ui renders the Pão Diário page as a Bubble Tea program.
//
// Core abstractions:
//   - View: a page region with its own Init/Update/View (Elm-style)
//   - AppModel: composes header, devotional, notebook, toasts and footer
//   - FocusManager: rotates keyboard focus between the notebook panes
//   - KeybindRegistry/KeyHandler: maps keys to commands per focused pane
//   - ToastStack: transient notifications that dismiss themselves
package ui

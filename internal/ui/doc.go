// Package ui contains the Bubble Tea program that draws the pane overlay and
// turns pointer gestures into tmux pane moves. The Model only orchestrates:
// geometry, zone classification, the drag lifecycle and rendering all live in
// their own packages and are called from here.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with every key, mouse, focus, resize,
//     watcher and status-expiry message, one at a time. Messages are routed
//     through a typed handler registry so each tea.Msg type has one focused
//     handler.
//   - A mouse press refreshes the layout from tmux before anything else, so a
//     gesture always starts from the current window. Motion and release feed
//     the drag.Machine with the projected layout.
//   - A drop is translated by move.Translate and executed synchronously
//     through the Gateway. The layout is re-queried after every issued
//     command, whether it succeeded or not.
//
// Coordinates:
//   - The Model keeps the tmux layout as queried and a copy projected onto
//     the terminal viewport (minus the footer row). The drag machine, the
//     classifier and the renderer only ever see the projected copy; pane ids
//     are identical in both, so commands built from it target tmux directly.
//
// Backend interactions:
//   - A Watcher streams layout signature changes. A change cancels any gesture
//     in progress and triggers a refresh; errors are reported in the status
//     row, and a vanished session ends the program.
//   - The Model records every signature it applies with Watcher.Sync so its
//     own commands are not reported back as external changes.
package ui

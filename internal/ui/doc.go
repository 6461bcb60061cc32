// Package ui styles the report headers with [lipgloss].
//
// A [Palette] is bound to the writer it renders for, so styling degrades to plain text
// when that writer is not a terminal (pipes, files, test buffers).
package ui

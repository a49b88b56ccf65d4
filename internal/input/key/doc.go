// Package key provides the input vocabulary of the editor.
//
// This package defines the types that describe one unit of input:
//
//   - Key: Identifies a navigation or editing key, a character, or text
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single input with its modifiers
//
// The vocabulary is closed. Front-ends translate whatever their platform
// delivers into these events; anything that does not map is dropped
// before it reaches the editor.
//
// # Key Specifications
//
// Scenario files and tests describe input with specification strings:
//
//   - Simple keys: "a", "1", "Enter", "Backspace", "Left"
//   - With modifiers: "Ctrl+X", "Shift+Left", "Ctrl+Shift+Up"
//   - Vim-style: "<C-x>", "<S-Left>", "<C-S-d>", "<CR>", "<BS>"
package key

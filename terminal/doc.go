// Package terminal adapts a tcell screen to the surfaces the game draws on.
//
// Features:
//   - Main canvas region (every row but the last) with bounds-checked cell access
//   - One-line instructions bar on the last row
//   - Non-blocking key reads decoupled from tcell event types
//   - Clean terminal restoration on exit/panic
//
// Raw mode, alternate screen and resize tracking are delegated to tcell.
package terminal

// Package terminal provides direct ANSI terminal control for the engine.
//
// Features:
//   - Adapter capability contract consumed by the frame loop and renderer
//   - Raw mode setup and clean restoration on exit/panic
//   - Allocation-free CSI sequence assembly helpers
//   - Minimal raw stdin key reading for host applications
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal

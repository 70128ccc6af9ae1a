// Package fxconvert implements an interactive foreign-exchange converter
// backed by a remote pricing service.
//
// The core functionalities include:
//   - Lexical Validation: hand-rolled checks for numeric amounts and
//     Gregorian calendar dates, so malformed input is rejected before any
//     value object is created.
//   - Currency Registry: the set of known currency codes and display names,
//     loaded from the pricing service once per session with a built-in
//     fallback set.
//   - Rate Resolution: a small provider contract with "latest" and
//     "as-of-date" lookups; every transport or data failure is reported as a
//     single unavailable condition, never a crash.
//   - Bounded-Retry Prompting: every interactive field grants at most three
//     attempts before the whole action is cancelled.
//   - Audit Trail: one timestamped line per completed action, appended to a
//     session log.
//
// This package serves as the foundational logic for the `fxc` command-line
// tool; the menu, command dispatch and terminal rendering live in the cmd
// package.
package fxconvert

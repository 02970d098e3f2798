// Package main hosts the subtidy CLI entrypoint and command graph.
//
// The Cobra-based command tree wires terminal invocations into the internal
// packages: srt parsing, rule evaluation, the fix engine, and report
// rendering. It centralizes configuration resolution, language detection, and
// structured logging setup so subcommands can focus on user experience.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main

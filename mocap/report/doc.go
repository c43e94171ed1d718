// Package report describes sessions for humans: a structured summary with
// per-channel statistics, and raw versus filtered comparison plots.
package report

// Package diag builds and renders Pax parse diagnostics. See Diagnostic
// for the builder and Render for the terminal output.
package diag

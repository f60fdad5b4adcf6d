// Package cli parses the confgraph command line into a validated
// config.Config. Flags override values loaded from -config; failures are
// returned as *ExitError carrying the process exit code.
package cli

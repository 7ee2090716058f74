// Package cli parses command-line arguments for the unionfind command,
// validates them and carries process-level concerns such as exit codes.
package cli

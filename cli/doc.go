// Package cli assembles the urlkit command tree.
//
// The commands are thin wrappers over the urlutil core: parse prints the
// components of a single URL, check validates one or more URLs (optionally
// read from a file) and can write a JSON report, and open launches a
// validated URL in the system browser. All commands honor the global
// --output, --no-color, and --debug flags.
package cli

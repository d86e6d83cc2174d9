// Package diagnostic provides structured warnings and errors reported while
// synthesizing members.
//
// Key capabilities:
//   - Severity buckets (error, warning, info) with merge support
//   - Source locations and field paths for host reporting
//   - Constructors for the generator's diagnostic codes
package diagnostic

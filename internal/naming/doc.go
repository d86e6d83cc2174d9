// Package naming derives the identifiers of generated members from a field
// identifier and optional explicit overrides.
//
// Derivation rules:
//   - An explicit override is returned verbatim.
//   - Otherwise leading underscores are stripped and the first remaining
//     character is upper-cased; the rest is left untouched.
//   - An identifier made only of underscores derives the empty string.
package naming

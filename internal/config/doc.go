// Package config resolves a field's raw attribute arguments into a typed
// FieldConfig. Every key is optional; absent keys take their defaults
// (no override, empty summary, false flags).
package config

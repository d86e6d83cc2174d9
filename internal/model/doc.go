// Package model holds the descriptors handed to the generator by the host
// compilation model.
//
// Descriptors are immutable snapshots of declarations, not source text:
//   - ClassDescriptor: namespace, name, accessibility, sealed flag, nesting
//   - FieldDescriptor: identifier, declared type, containing class, raw attributes
//   - Value: a typed attribute constant (string or bool)
package model

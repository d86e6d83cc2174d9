// Package synth turns one annotated field into declaration fragments.
//
// For a field it emits up to four fragments, one per artifact kind:
//   - Properties: accessor whose setter stores the value and calls the trigger method
//   - Events: change notification, with or without a typed payload
//   - TriggerMethods: method raising the notification
//   - PayloadTypes: sealed payload type carrying the new value (opt-in)
//
// Fragments are C# member declarations written at class-body level without
// indentation; the gen package places them inside namespace and class scaffolding.
package synth

// Package gen assembles synthesized member fragments into generated source
// files, one file per class and artifact kind.
//
// Assembly approach uses text/template for the file scaffolding:
//   - Generated-file banner
//   - Namespace block (omitted for the global namespace)
//   - Partial class declaration matching the class name and accessibility
//
// Output is deterministic: classes in the order their fields are supplied,
// fields in declaration order, artifact kinds in a fixed order.
package gen

// Package decl provides the read-only structural model of the declarations
// and expressions the expansion engine consumes.
//
// The model is built by a front end (request files, Go packages, or a host
// parser linked as a library) and never mutated by the engine.
//
// Key types:
//   - TypeDeclaration: kind, name, inheritance list and ordered members
//   - Member: sealed union of *Field and *Function
//   - Expr: an expression kept as verbatim text plus a lexical classification
//   - Arguments: the ordered, optionally labeled arguments of a macro usage
package decl

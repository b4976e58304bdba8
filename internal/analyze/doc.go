// Package analyze is the Go-source front end.
//
// It loads packages with golang.org/x/tools/go/packages and turns every
// declaration carrying a //synth: directive into expansion requests. Type
// declarations are mapped onto the structural model the engine consumes:
//
//   - a struct that embeds another struct, or has a pointer-receiver
//     method, is a reference type; other structs are value types
//   - interfaces are protocols, every other named type is an enumeration
//   - embedded types become the inheritance list
//   - unexported members are private, exported ones public
//   - a json tag name becomes the field's decoding key
//
// Directives on var and const declarations produce freestanding requests.
package analyze

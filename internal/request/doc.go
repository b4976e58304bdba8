// Package request loads expansion requests from YAML or TOML files.
//
// A request file lists macro usages together with the structural view of
// the annotated declaration, so the engine can run without a host parser:
//
//	version: "1"
//	requests:
//	  - macro: Mappable
//	    location: {file: Models.swift, line: 12, column: 1}
//	    args: "isSubclass: true"
//	    declaration:
//	      kind: class
//	      name: TestResponse
//	      inherits: BaseResponse
//	      members:
//	        - field: {name: data, type: String}
//	        - function:
//	            name: product
//	            visibility: private
//	            params:
//	              - {label: _, name: num, type: Int, default: "9"}
//	            result: Int
//	  - macro: stringify
//	    arguments: ["a + b"]
//
// # Arguments
//
// Each entry of arguments is either a scalar holding the expression text or
// a {label, value} map. The args string form is split with ParseArguments,
// the same parser the Go-source front end applies to directives. A request
// uses one form or the other.
//
// Argument values are host expression text: a string literal argument is
// written with its quotes, e.g. '"app_icon"'.
//
// TOML files use the same keys.
package request

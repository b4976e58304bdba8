// Package syntax defines the tree of generated declarations, statements and
// expressions that expansion rules produce and the render package prints.
//
// Every node is a plain value built fresh per request. Nothing here refers
// back to the input model.
package syntax

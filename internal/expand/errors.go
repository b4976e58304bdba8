package expand

import "errors"

var (
	// ErrMalformedInvocation is returned when a request violates the shape the
	// invocation grammar guarantees, such as a missing required operand.
	ErrMalformedInvocation = errors.New("malformed macro invocation")
	// ErrUnknownMacro is returned when no rule is registered for a macro
	// identity.
	ErrUnknownMacro = errors.New("unknown macro")
)

// Diagnostic messages. Their text is part of the diagnostic identity and
// must stay stable.
const (
	msgMissingKey               = "missing required key argument"
	msgTypeNotMetatype          = "type argument must be a metatype such as Int.self; defaulting to %s"
	msgUnsupportedInterfaceKind = "unsupported declaration kind for interface extraction"
	msgFieldWithoutType         = "field '%s' has no type annotation and was omitted from %s"
	msgSubclassNotLiteral       = "isSubclass expects a boolean literal; treating it as false"
	msgValueTypeSubclass        = "value types do not support subclass composition"
	msgInheritedClassNotFound   = "the inherited class was not found"
	msgUnsupportedKind          = "unsupported declaration kind"
)

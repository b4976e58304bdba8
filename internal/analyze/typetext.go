package analyze

import (
	"go/types"
	"strings"
)

// basicNames spells Go basic types the way the host does.
var basicNames = map[string]string{
	"bool":    "Bool",
	"string":  "String",
	"int":     "Int",
	"int8":    "Int8",
	"int16":   "Int16",
	"int32":   "Int32",
	"int64":   "Int64",
	"uint":    "UInt",
	"uint8":   "UInt8",
	"uint16":  "UInt16",
	"uint32":  "UInt32",
	"uint64":  "UInt64",
	"uintptr": "UInt",
	"byte":    "UInt8",
	"rune":    "Character",
	"float32": "Float",
	"float64": "Double",
}

// wellKnown maps qualified library types to their host counterparts.
var wellKnown = map[string]string{
	"time.Time":     "Date",
	"time.Duration": "TimeInterval",
	"net/url.URL":   "URL",
}

// HostType renders t in host spelling: []T becomes [T], map[K]V becomes
// [K: V], *T becomes T?, named types keep their name.
func HostType(t types.Type) string {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		if name, ok := basicNames[tt.Name()]; ok {
			return name
		}

		return "Any"

	case *types.Pointer:
		return HostType(tt.Elem()) + "?"

	case *types.Slice:
		if isByte(tt.Elem()) {
			return "Data"
		}

		return "[" + HostType(tt.Elem()) + "]"

	case *types.Array:
		return "[" + HostType(tt.Elem()) + "]"

	case *types.Map:
		return "[" + HostType(tt.Key()) + ": " + HostType(tt.Elem()) + "]"

	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			if obj.Name() == "error" {
				return "Error"
			}

			return obj.Name()
		}

		if name, ok := wellKnown[obj.Pkg().Path()+"."+obj.Name()]; ok {
			return name
		}

		return obj.Name()

	case *types.Signature:
		params := make([]string, 0, tt.Params().Len())
		for i := range tt.Params().Len() {
			params = append(params, HostType(tt.Params().At(i).Type()))
		}

		result, throws := hostResult(tt.Results())

		var b strings.Builder
		b.WriteString("(" + strings.Join(params, ", ") + ")")

		if throws {
			b.WriteString(" throws")
		}

		if result == "" {
			result = "Void"
		}

		b.WriteString(" -> " + result)

		return b.String()

	default:
		return "Any"
	}
}

// hostResult renders a result list. A trailing error becomes throws; more
// than one remaining result becomes a tuple.
func hostResult(results *types.Tuple) (result string, throws bool) {
	n := results.Len()
	if n > 0 && isError(results.At(n-1).Type()) {
		throws = true
		n--
	}

	switch n {
	case 0:
		return "", throws
	case 1:
		return HostType(results.At(0).Type()), throws
	default:
		parts := make([]string, 0, n)
		for i := range n {
			parts = append(parts, HostType(results.At(i).Type()))
		}

		return "(" + strings.Join(parts, ", ") + ")", throws
	}
}

func isError(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

func isByte(t types.Type) bool {
	b, ok := types.Unalias(t).(*types.Basic)
	return ok && b.Kind() == types.Byte
}

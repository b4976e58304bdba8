package request

import (
	"fmt"

	"macro-synth/internal/decl"
	"macro-synth/internal/diagnostic"
)

// Validate checks the structure of a request file before anything is
// expanded. It does not know which macros exist; the engine reports unknown
// identities itself.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "request file is nil", "", decl.Location{})
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q", f.Version), f.Source, decl.Location{})
	}

	if len(f.Requests) == 0 {
		res.AddWarning("no_requests", "file declares no requests", f.Source, decl.Location{})
	}

	for i := range f.Requests {
		validateRequest(res, i, &f.Requests[i])
	}

	return res
}

func validateRequest(res *diagnostic.Diagnostics, i int, r *RequestSpec) {
	subject := fmt.Sprintf("requests[%d]", i)
	loc := r.Location.toLocation()

	if r.Macro == "" {
		res.AddError("missing_macro", "request has no macro", subject, loc)
	}

	switch {
	case r.Args != "" && len(r.Arguments) > 0:
		res.AddError("conflicting_arguments", "set either args or arguments, not both", subject, loc)
	case r.Args != "":
		if _, err := ParseArguments(r.Args); err != nil {
			res.AddError("invalid_arguments", fmt.Sprintf("invalid args %q: %v", r.Args, err), subject, loc)
		}
	}

	for j, a := range r.Arguments {
		if a.Value == "" {
			res.AddError("empty_argument", fmt.Sprintf("argument %d has no value", j+1), subject, loc)
		}
	}

	if r.Declaration != nil {
		validateDeclaration(res, subject+".declaration", r.Declaration)
	}
}

func validateDeclaration(res *diagnostic.Diagnostics, subject string, d *DeclarationSpec) {
	loc := d.Location.toLocation()

	if d.Name == "" {
		res.AddError("missing_declaration_name", "declaration has no name", subject, loc)
	}

	if _, err := decl.ParseKind(d.Kind); err != nil {
		res.AddError("unknown_kind", fmt.Sprintf("%v (expected class, struct, protocol or enum)", err), subject, loc)
	}

	seen := make(map[string]struct{})

	for j, m := range d.Members {
		memberSubject := fmt.Sprintf("%s.members[%d]", subject, j)

		switch {
		case m.Field != nil && m.Function != nil:
			res.AddError("ambiguous_member", "member sets both field and function", memberSubject, loc)
			continue
		case m.Field == nil && m.Function == nil:
			res.AddError("empty_member", "member sets neither field nor function", memberSubject, loc)
			continue
		}

		name, visibility := memberNameAndVisibility(m)
		if name == "" {
			res.AddError("missing_member_name", "member has no name", memberSubject, loc)
		}

		if _, err := decl.ParseVisibility(visibility); err != nil {
			res.AddError("invalid_visibility", err.Error(), memberSubject, loc)
		}

		if m.Field != nil && name != "" {
			if _, dup := seen[name]; dup {
				res.AddWarning("duplicate_field", fmt.Sprintf("field %q is declared twice", name), memberSubject, loc)
			}

			seen[name] = struct{}{}
		}

		if m.Function != nil {
			for k, p := range m.Function.Params {
				if p.Name == "" {
					res.AddError("missing_param_name", fmt.Sprintf("parameter %d has no name", k+1), memberSubject, loc)
				}
			}
		}
	}
}

func memberNameAndVisibility(m MemberSpec) (string, string) {
	if m.Field != nil {
		return m.Field.Name, m.Field.Visibility
	}

	return m.Function.Name, m.Function.Visibility
}

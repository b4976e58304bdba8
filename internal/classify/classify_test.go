package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macro-synth/internal/decl"
)

func merchantMembers() []decl.Member {
	return []decl.Member{
		&decl.Field{Name: "name", Type: "String", Visibility: decl.VisibilityPrivate},
		&decl.Field{Name: "age", Type: "Int", Visibility: decl.VisibilityPublic},
		&decl.Function{Name: "init", Kind: decl.FuncInitializer, Visibility: decl.VisibilityPrivate},
		&decl.Field{Name: "city", Type: "String", Visibility: decl.VisibilityFilePrivate},
		&decl.Function{Name: "product", HasBody: true},
		&decl.Function{Name: "test", Visibility: decl.VisibilityPrivate, HasBody: true},
		&decl.Field{Name: "zip", Type: "String"},
	}
}

func TestNonPrivateFields(t *testing.T) {
	fields := NonPrivateFields(merchantMembers())
	require.Len(t, fields, 3)
	assert.Equal(t, "age", fields[0].Name)
	assert.Equal(t, "city", fields[1].Name)
	assert.Equal(t, "zip", fields[2].Name)
}

func TestNonPrivateFunctions(t *testing.T) {
	funcs := NonPrivateFunctions(merchantMembers())
	require.Len(t, funcs, 1)
	assert.Equal(t, "product", funcs[0].Name)
}

func TestInitializersAndMethods(t *testing.T) {
	inits := Initializers(merchantMembers())
	require.Len(t, inits, 1)
	assert.True(t, inits[0].IsInitializer())

	methods := Methods(merchantMembers())
	require.Len(t, methods, 2)
	assert.Equal(t, "product", methods[0].Name)
	assert.Equal(t, "test", methods[1].Name)
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, NonPrivateFields(nil))
	assert.Empty(t, NonPrivateFunctions(nil))
	assert.Empty(t, Initializers(nil))
	assert.Empty(t, Methods([]decl.Member{}))
}

package analyze

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macro-synth/internal/decl"
	"macro-synth/internal/expand"
	"macro-synth/internal/render"
)

const modelsPkg = "macro-synth/examples/models"

func loadModels(t *testing.T) *Scan {
	t.Helper()

	scan, err := NewAnalyzer().LoadPackages(modelsPkg)
	require.NoError(t, err)
	require.NotNil(t, scan)

	return scan
}

func lookup(t *testing.T, scan *Scan, name string) *Annotated {
	t.Helper()

	ann, ok := scan.Lookup(TypeID{PkgPath: modelsPkg, Name: name})
	require.True(t, ok, "%s should be annotated", name)

	return ann
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	scan := loadModels(t)

	assert.Equal(t, []string{modelsPkg}, scan.Packages)

	names := make([]string, 0, len(scan.Annotated))
	for _, a := range scan.Annotated {
		names = append(names, a.ID.Name)
	}

	assert.Equal(t, []string{
		"BaseResponse", "TestResponse", "TestModel", "Merchant", "Shape", "version", "build", "appIcon",
	}, names)

	assert.Len(t, scan.Requests(), 8)
}

func TestAnalyzer_Kinds(t *testing.T) {
	scan := loadModels(t)

	tests := []struct {
		name string
		kind decl.Kind
	}{
		{"BaseResponse", decl.KindReference},
		{"TestResponse", decl.KindReference},
		{"TestModel", decl.KindValue},
		{"Merchant", decl.KindReference},
		{"Shape", decl.KindEnumeration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann := lookup(t, scan, tt.name)
			require.NotNil(t, ann.Declaration)
			assert.Equal(t, tt.kind, ann.Declaration.Kind)
			assert.Equal(t, "models.go", filepath.Base(ann.Declaration.Location.File))
		})
	}

	assert.Nil(t, lookup(t, scan, "version").Declaration)
}

func TestAnalyzer_Fields(t *testing.T) {
	scan := loadModels(t)

	t.Run("embedding becomes inheritance", func(t *testing.T) {
		d := lookup(t, scan, "TestResponse").Declaration
		assert.Equal(t, []string{"BaseResponse"}, d.Inherits)
		require.Len(t, d.Members, 1)
		assert.Equal(t, &decl.Field{
			Name:       "data",
			Type:       "String",
			Key:        "data",
			Visibility: decl.VisibilityPublic,
			Location:   d.Members[0].MemberLocation(),
		}, d.Members[0])
	})

	t.Run("types and keys", func(t *testing.T) {
		d := lookup(t, scan, "TestModel").Declaration

		type fieldView struct {
			name, typ, key string
		}

		var got []fieldView
		for _, m := range d.Members {
			f, ok := m.(*decl.Field)
			require.True(t, ok)
			got = append(got, fieldView{f.Name, f.Type, f.Key})
		}

		assert.Equal(t, []fieldView{
			{"itemTitle", "String", "item_title"},
			{"tags", "[String]", "tags"},
			{"scores", "[String: Int]", "scores"},
			{"owner", "String?", "owner"},
			{"createdAt", "Date", "created_at"},
			{"extra", "[String: String]", ""},
		}, got)
	})

	t.Run("unexported is private", func(t *testing.T) {
		d := lookup(t, scan, "BaseResponse").Declaration
		require.Len(t, d.Members, 4)

		raw, ok := d.Members[2].(*decl.Field)
		require.True(t, ok)
		assert.Equal(t, "raw", raw.Name)
		assert.Equal(t, "Data", raw.Type)
		assert.True(t, raw.Visibility.IsPrivate())
	})
}

func TestAnalyzer_Methods(t *testing.T) {
	d := lookup(t, loadModels(t), "Merchant").Declaration

	var methods []*decl.Function
	for _, m := range d.Members {
		if fn, ok := m.(*decl.Function); ok {
			methods = append(methods, fn)
		}
	}

	require.Len(t, methods, 3)

	assert.Equal(t, "product", methods[0].Name)
	assert.Equal(t, []decl.Parameter{
		{Label: "_", Name: "num", Type: "Int"},
		{Label: "_", Name: "age", Type: "Int"},
	}, methods[0].Parameters)
	assert.Equal(t, "Int", methods[0].Result)
	assert.False(t, methods[0].Throws)

	assert.Equal(t, "refresh", methods[1].Name)
	assert.True(t, methods[1].Throws)
	assert.Equal(t, "Bool", methods[1].Result)

	assert.Equal(t, "rotate", methods[2].Name)
	assert.True(t, methods[2].Visibility.IsPrivate())
}

func TestAnalyzer_Directives(t *testing.T) {
	scan := loadModels(t)

	sub := lookup(t, scan, "TestResponse")
	require.Len(t, sub.Directives, 1)
	assert.Equal(t, "Mappable", sub.Directives[0].Macro)

	arg, ok := sub.Directives[0].Arguments.Lookup("isSubclass")
	require.True(t, ok)
	assert.Equal(t, decl.ExprBool, arg.Value.Kind)

	build := lookup(t, scan, "build")
	require.Len(t, build.Directives[0].Arguments, 2)
	assert.Equal(t, "Int", build.Directives[0].Arguments[1].Value.Base)
}

func TestAnalyzer_EndToEnd(t *testing.T) {
	scan := loadModels(t)
	engine := expand.New(expand.Options{})
	p := render.NewPrinter()

	expandOne := func(name string) *expand.Expansion {
		reqs := lookup(t, scan, name).Requests()
		require.Len(t, reqs, 1)

		exp, err := engine.Expand(reqs[0])
		require.NoError(t, err)

		return exp
	}

	assert.Equal(t, `public protocol MerchantInterface: AnyObject {
    var age: Int { get }

    func product(_ num: Int, _ age: Int) -> Int
    func refresh(_ at: Date) throws -> Bool
}`, p.Expansion(expandOne("Merchant")))

	assert.Equal(t, `required init?(map: ObjectMapper.Map) {
    super.init(map: map)
}

override func mapping(map: ObjectMapper.Map) {
    super.mapping(map: map)
    data <- map["data"]
}`, p.Expansion(expandOne("TestResponse")))

	assert.Equal(t, `static let appIcon = "app_icon"`, p.Expansion(expandOne("appIcon")))

	shape := expandOne("Shape")
	assert.True(t, shape.HasErrors())
	assert.Empty(t, shape.Declarations)
}

func TestAnalyzer_LoadError(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("macro-synth/does/not/exist")
	assert.Error(t, err)
}

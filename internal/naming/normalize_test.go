package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"isSubclass", "issubclass"},
		{"is_subclass", "issubclass"},
		{"InterfaceGen", "interfacegen"},
		{"XMLParser", "xmlparser"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"is", "subclass"}, TokenizeIdent("isSubclass"))
	assert.Equal(t, []string{"interface", "gen"}, TokenizeIdent("InterfaceGen"))
	assert.Equal(t, []string{"app", "icon"}, TokenizeIdent("app_icon"))
	assert.Equal(t, []string{"get", "http", "response"}, TokenizeIdent("getHTTPResponse"))
	assert.Empty(t, TokenizeIdent(""))
}

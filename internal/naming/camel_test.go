package naming

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"app_icon", "appIcon"},
		{"empty_image", "emptyImage"},
		{"error_tip", "errorTip"},
		{"ERROR_TIP", "errorTip"},
		{"empty_IMAGE_view", "emptyImageView"},
		{"single", "single"},
		{"Already", "already"},
		{"item_2_name", "item2Name"},
		{"a__b", "aB"},
		{"_leading", "Leading"},
		{"trailing_", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeToCamel(tt.input))
		})
	}
}

func TestSnakeToCamel_Concurrent(t *testing.T) {
	var wg sync.WaitGroup

	results := make([]string, 32)
	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			results[i] = SnakeToCamel("help_center_url")
		}(i)
	}

	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "helpCenterUrl", r)
	}
}

func TestLowerCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ItemTitle", "itemTitle"},
		{"URLPath", "urlPath"},
		{"ID", "id"},
		{"Age", "age"},
		{"token", "token"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, LowerCamel(tt.input))
		})
	}
}

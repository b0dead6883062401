package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "plain host", input: "https://example.com/path", want: "example.com"},
		{name: "www stripped", input: "https://www.youtube.com/watch?v=1", want: "youtube.com"},
		{name: "port kept", input: "http://localhost:8080/", want: "localhost:8080"},
		{name: "no host", input: "about:blank", want: ""},
		{name: "not a url", input: "hello world", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDomain(tt.input))
		})
	}
}

func TestIsNativeURL(t *testing.T) {
	assert.True(t, IsNativeURL("about:blank"))
	assert.True(t, IsNativeURL("tabicon://newtab"))
	assert.False(t, IsNativeURL("https://example.com"))
	assert.False(t, IsNativeURL(""))
}

func TestSanitizeDomainForPNG(t *testing.T) {
	assert.Equal(t, "example.com.png", SanitizeDomainForPNG("example.com"))
	assert.Equal(t, "localhost_8080.png", SanitizeDomainForPNG("localhost:8080"))
	assert.Equal(t, "a_b_c.png", SanitizeDomainForPNG("a/b\\c"))
}

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims and lowercases", " Best Pizza ", "best pizza"},
		{"already normalized", "best pizza", "best pizza"},
		{"empty", "", ""},
		{"inner whitespace kept", "best  pizza", "best  pizza"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Keyword(tt.input))
		})
	}
}

func TestDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full URL", "https://www.Example.com/", "example.com"},
		{"http scheme", "http://example.com", "example.com"},
		{"www only", "www.example.com", "example.com"},
		{"trailing slashes", "example.com///", "example.com"},
		{"already normalized", "example.com", "example.com"},
		{"subdomain kept", "https://blog.example.com", "blog.example.com"},
		{"path kept", "example.com/pricing", "example.com/pricing"},
		{"whitespace", "  Example.COM ", "example.com"},
		{"stacked www", "www.www.example.com", "example.com"},
		{"www behind scheme twice", "https://www.www.example.com", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Domain(tt.input))
		})
	}
}

func TestDomainIdempotent(t *testing.T) {
	inputs := []string{
		"https://www.Example.com/",
		"http://sub.domain.example.org/path/",
		"www.www.example.com",
		"https://www.www.example.com/",
		"example.com",
		"",
	}

	for _, input := range inputs {
		once := Domain(input)
		assert.Equal(t, once, Domain(once), "normalizing %q twice must be stable", input)
	}
}

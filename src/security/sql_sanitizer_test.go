package security_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kertapati/horizon-sub000/src/security"
)

func TestValidateSearchQuery(t *testing.T) {
	s := security.NewSQLSanitizer()

	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "empty query", query: "", wantErr: false},
		{name: "plain text", query: "climb mt fuji", wantErr: false},
		{name: "accented text", query: "café in São Paulo", wantErr: false},
		{name: "union select", query: "x union select password", wantErr: true},
		{name: "drop table", query: "a drop table items", wantErr: true},
		{name: "comment sequence", query: "fuji -- comment", wantErr: true},
		{name: "semicolon", query: "fuji; delete", wantErr: true},
		{name: "script tag", query: "<script>alert(1)</script>", wantErr: true},
		{name: "information schema", query: "information_schema.tables", wantErr: true},
		{name: "too long", query: strings.Repeat("a", 201), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidateSearchQuery(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeSearchQuery(t *testing.T) {
	s := security.NewSQLSanitizer()

	assert.Equal(t, "", s.SanitizeSearchQuery(""))
	assert.Equal(t, "mt fuji", s.SanitizeSearchQuery("  mt   fuji  "))
	assert.Equal(t, "100\\% complete", s.SanitizeSearchQuery("100% complete"))
	assert.Equal(t, "snake\\_case", s.SanitizeSearchQuery("snake_case"))
}

func TestEscapeForLike(t *testing.T) {
	s := security.NewSQLSanitizer()

	assert.Equal(t, "a\\%b", s.EscapeForLike("a%b"))
	assert.Equal(t, "a\\_b", s.EscapeForLike("a_b"))
	assert.Equal(t, "a\\\\b", s.EscapeForLike("a\\b"))
	assert.Equal(t, "plain", s.EscapeForLike("plain"))
}

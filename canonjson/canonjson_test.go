package canonjson_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cnab.software/bundle/canonjson"
)

func TestVerify_Canonical(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "object", data: `{"a":1,"b":"two"}`},
		{name: "nested", data: `{"a":{"x":[1,2,3],"y":{}},"b":[]}`},
		{name: "whitespace inside string", data: `{"a":"b c\td"}`},
		{name: "escaped quote", data: `{"a":"say \"hi\" now"}`},
		{name: "array", data: `[1,2,3]`},
		{name: "integer number", data: `{"size":1337}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, canonjson.Verify([]byte(tt.data)))
		})
	}
}

func TestVerify_UnexpectedWhitespace(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		line   int
		column int
	}{
		{name: "space after colon", data: `{"a": 1}`, line: 1, column: 6},
		{name: "pretty printed", data: "{\n  \"a\": 1\n}", line: 1, column: 2},
		{name: "trailing newline", data: "{\"a\":1}\n", line: 1, column: 8},
		{name: "leading space", data: ` {"a":1}`, line: 1, column: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := canonjson.Verify([]byte(tt.data))
			require.Error(t, err)

			var syn *canonjson.SyntaxError
			require.ErrorAs(t, err, &syn)
			assert.Equal(t, canonjson.CodeUnexpectedWhitespace, syn.Code)
			assert.Equal(t, tt.line, syn.Line)
			assert.Equal(t, tt.column, syn.Column)
		})
	}
}

func TestVerify_NotCanonical(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unsorted keys", data: `{"b":1,"a":2}`},
		{name: "non-canonical number", data: `{"a":1.0}`},
		{name: "superfluous escape", data: `{"a":"\u0041"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := canonjson.Verify([]byte(tt.data))
			require.Error(t, err)

			var syn *canonjson.SyntaxError
			require.ErrorAs(t, err, &syn)
			assert.Equal(t, canonjson.CodeNotCanonical, syn.Code)
		})
	}
}

func TestVerify_InvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ``},
		{name: "dangling value", data: `{"a":}`},
		{name: "unterminated string", data: `{"a":"b}`},
		{name: "scalar root", data: `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := canonjson.Verify([]byte(tt.data))
			require.Error(t, err)

			var syn *canonjson.SyntaxError
			require.ErrorAs(t, err, &syn)
			assert.Equal(t, canonjson.CodeInvalidJSON, syn.Code)
			assert.Error(t, errors.Unwrap(err))
		})
	}
}

func TestUnmarshal(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	require.NoError(t, canonjson.Unmarshal([]byte(`{"name":"helloworld"}`), &v))
	assert.Equal(t, "helloworld", v.Name)
}

func TestUnmarshal_RejectsPretty(t *testing.T) {
	var v map[string]any
	err := canonjson.Unmarshal([]byte("{\n  \"name\": \"helloworld\"\n}"), &v)
	require.Error(t, err)

	var syn *canonjson.SyntaxError
	require.ErrorAs(t, err, &syn)
	assert.Equal(t, canonjson.CodeUnexpectedWhitespace, syn.Code)
	assert.Nil(t, v)
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := canonjson.Marshal(map[string]any{
		"zeta":  1,
		"alpha": "a & b",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"a & b","zeta":1}`, string(data))

	// Whatever Marshal produces must pass Verify.
	assert.NoError(t, canonjson.Verify(data))
}

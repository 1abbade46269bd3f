package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sumPayload struct {
	A int32 `json:"a"`
	B int32 `json:"b"`
}

func newJSONRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/suma", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		contentType string
		expectedErr error
		expected    sumPayload
	}{
		{
			name:        "valid body",
			body:        `{"A":1,"B":2}`,
			contentType: "application/json",
			expected:    sumPayload{A: 1, B: 2},
		},
		{
			name:        "charset parameter accepted",
			body:        `{"a":1}`,
			contentType: "application/json; charset=utf-8",
			expected:    sumPayload{A: 1},
		},
		{
			name:        "empty body",
			body:        "",
			contentType: "application/json",
			expectedErr: ErrEmptyBody,
		},
		{
			name:        "whitespace body",
			body:        "  \n ",
			contentType: "application/json",
			expectedErr: ErrEmptyBody,
		},
		{
			name:        "empty body without content type",
			body:        "",
			expectedErr: ErrEmptyBody,
		},
		{
			name:        "null literal",
			body:        "null",
			contentType: "application/json",
			expectedErr: ErrEmptyBody,
		},
		{
			name:        "text content type",
			body:        `{"A":1,"B":2}`,
			contentType: "text/plain; charset=utf-8",
			expectedErr: ErrUnsupportedMediaType,
		},
		{
			name:        "missing content type",
			body:        `{"A":1,"B":2}`,
			expectedErr: ErrUnsupportedMediaType,
		},
		{
			name:        "malformed JSON",
			body:        "{ invalid json }",
			contentType: "application/json",
			expectedErr: ErrMalformedBody,
		},
		{
			name:        "truncated JSON",
			body:        "{",
			contentType: "application/json",
			expectedErr: ErrMalformedBody,
		},
		{
			name:        "number out of int32 range",
			body:        `{"A":3000000000}`,
			contentType: "application/json",
			expectedErr: ErrMalformedBody,
		},
		{
			name:        "string instead of number",
			body:        `{"A":"five"}`,
			contentType: "application/json",
			expectedErr: ErrMalformedBody,
		},
		{
			name:        "array instead of object",
			body:        `[1,2]`,
			contentType: "application/json",
			expectedErr: ErrMalformedBody,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var payload sumPayload
			err := DecodeJSON(newJSONRequest(tc.body, tc.contentType), &payload)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, payload)
		})
	}
}

func TestDecodeJSON_Reasons(t *testing.T) {
	t.Parallel()

	var payload sumPayload
	err := DecodeJSON(newJSONRequest(`{"a":"x"}`, "application/json"), &payload)

	var bodyErr *BodyError
	require.True(t, errors.As(err, &bodyErr))
	assert.Equal(t, `field "a" must be a valid int32`, bodyErr.Reason)

	err = DecodeJSON(newJSONRequest(`{`, "application/json"), &payload)
	require.True(t, errors.As(err, &bodyErr))
	assert.Contains(t, bodyErr.Reason, "malformed JSON")
}

func TestDecodeJSON_NoBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/suma", nil)
	var payload sumPayload

	assert.ErrorIs(t, DecodeJSON(req, &payload), ErrEmptyBody)
}

func TestDecodeJSON_BodyTooLarge(t *testing.T) {
	t.Parallel()

	body := `{"a":1,"pad":"` + strings.Repeat("x", MaxRequestBodyBytes) + `"}`
	req := newJSONRequest(body, "application/json")
	w := httptest.NewRecorder()
	LimitBody(w, req)

	var payload sumPayload
	err := DecodeJSON(req, &payload)

	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestIsJSONContentType(t *testing.T) {
	t.Parallel()

	assert.True(t, IsJSONContentType("application/json"))
	assert.True(t, IsJSONContentType("Application/JSON; charset=utf-8"))
	assert.False(t, IsJSONContentType(""))
	assert.False(t, IsJSONContentType("text/plain"))
	assert.False(t, IsJSONContentType("application/jsonp"))
	assert.False(t, IsJSONContentType(";;"))
}

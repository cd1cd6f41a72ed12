package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetIDParam(t *testing.T) {
	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			r := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.value)

			got, err := GetIDParam(r, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetOperatorID(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	id, err := GetOperatorID(r)
	require.NoError(t, err)
	assert.Nil(t, id)

	r.Header.Set(OperatorHeader, "8")
	id, err = GetOperatorID(r)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(8), *id)

	r.Header.Set(OperatorHeader, "eight")
	_, err = GetOperatorID(r)
	assert.Error(t, err)
}

func TestGetOptionalInt64Query(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?region_id=35", nil)
	v, err := GetOptionalInt64Query(r, "region_id")
	require.NoError(t, err)
	assert.Equal(t, int64(35), *v)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	v, err = GetOptionalInt64Query(r, "region_id")
	require.NoError(t, err)
	assert.Nil(t, v)

	r = httptest.NewRequest(http.MethodGet, "/?region_id=x", nil)
	_, err = GetOptionalInt64Query(r, "region_id")
	assert.Error(t, err)
}

func TestGetPaginationParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?limit=500&offset=-2", nil)
	limit, offset := GetPaginationParams(r)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	r = httptest.NewRequest(http.MethodGet, "/?limit=50&offset=10", nil)
	limit, offset = GetPaginationParams(r)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 10, offset)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "x", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &v))
}

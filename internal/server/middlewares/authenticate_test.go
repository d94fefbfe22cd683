package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdouchement/checklist/internal/server/middlewares"
	"github.com/stretchr/testify/assert"
)

func TestExtractToken(t *testing.T) {
	cases := map[string]struct {
		headers map[string]string
		token   string
	}{
		"bearer": {
			headers: map[string]string{"Authorization": "Bearer tk42"},
			token:   "tk42",
		},
		"bearer is case-insensitive": {
			headers: map[string]string{"Authorization": "bEaReR tk42"},
			token:   "tk42",
		},
		"wrong scheme": {
			headers: map[string]string{"Authorization": "Basic dXNlcjpwdw=="},
			token:   "",
		},
		"no headers": {
			headers: map[string]string{},
			token:   "",
		},
		"x-access-token fallback": {
			headers: map[string]string{"X-Access-Token": "tk42"},
			token:   "tk42",
		},
		"x-access-token with bearer prefix": {
			headers: map[string]string{"X-Access-Token": "Bearer tk42"},
			token:   "tk42",
		},
		"authorization wins over fallback": {
			headers: map[string]string{
				"Authorization":  "Bearer tk42",
				"X-Access-Token": "tk43",
			},
			token: "tk42",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range c.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, c.token, middlewares.ExtractToken(r))
		})
	}
}

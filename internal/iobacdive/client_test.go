package iobacdive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gntraits/pkg/config"
	"github.com/gnames/gntraits/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, apiURL, tokenURL string) *client {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptBacDiveUser("me@example.org"),
		config.OptBacDivePassword("secret"),
		config.OptBacDiveAPIURL(apiURL),
		config.OptBacDiveTokenURL(tokenURL),
		config.OptBacDivePacingMs(1),
		config.OptBacDiveUseCache(false),
	})
	q, err := New(cfg)
	require.NoError(t, err)
	return q.(*client)
}

func tokenServer(t *testing.T, token string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "password", r.Form.Get("grant_type"))
			assert.Equal(t, "me@example.org", r.Form.Get("username"))
			json.NewEncoder(w).Encode(map[string]string{
				"access_token": token,
			})
		},
	))
}

func TestNewWithoutCredentials(t *testing.T) {
	cfg := config.New()
	_, err := New(cfg)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.BacDiveCredentialsError, gnErr.Code)
}

func TestLogin(t *testing.T) {
	sso := tokenServer(t, "tok-123")
	defer sso.Close()

	c := testClient(t, "http://unused", sso.URL)
	err := c.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", c.token)
}

func TestLoginBadCredentials(t *testing.T) {
	sso := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		},
	))
	defer sso.Close()

	c := testClient(t, "http://unused", sso.URL)
	err := c.Login(context.Background())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.BacDiveAuthError, gnErr.Code)
}

func apiServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/taxon/Escherichia/coli",
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-123",
				r.Header.Get("Authorization"))
			fmt.Fprint(w, `{
				"count": 2,
				"results": [{"id": 139088}, {"id": 5}]
			}`)
		})
	mux.HandleFunc("/fetch/139088;5",
		func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{
				"results": {
					"139088": {"strain number": "B"},
					"5": {"strain number": "A"}
				}
			}`)
		})
	mux.HandleFunc("/taxon/Nullius/species",
		func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
	mux.HandleFunc("/taxon/Broken/api",
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
	return httptest.NewServer(mux)
}

func TestQuery(t *testing.T) {
	api := apiServer(t)
	defer api.Close()

	c := testClient(t, api.URL, "http://unused")
	c.token = "tok-123"

	recs, err := c.Query(context.Background(), "Escherichia coli")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Candidates are ordered by numeric strain ID.
	assert.Equal(t, "A", recs[0]["strain number"])
	assert.Equal(t, "B", recs[1]["strain number"])
}

func TestQueryUnknownSpecies(t *testing.T) {
	api := apiServer(t)
	defer api.Close()

	c := testClient(t, api.URL, "http://unused")
	c.token = "tok-123"

	recs, err := c.Query(context.Background(), "Nullius species")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestQueryServerError(t *testing.T) {
	api := apiServer(t)
	defer api.Close()

	c := testClient(t, api.URL, "http://unused")
	c.token = "tok-123"

	_, err := c.Query(context.Background(), "Broken api")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.BacDiveSearchError, gnErr.Code)
}

func TestQueryNonBinomial(t *testing.T) {
	c := testClient(t, "http://unused", "http://unused")

	recs, err := c.Query(context.Background(), "Escherichia")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// An expired token triggers one re-login and a retry.
func TestQueryTokenRefresh(t *testing.T) {
	sso := tokenServer(t, "tok-fresh")

	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/taxon/Escherichia/coli",
		func(w http.ResponseWriter, r *http.Request) {
			calls++
			if r.Header.Get("Authorization") != "Bearer tok-fresh" {
				http.Error(w, "expired", http.StatusUnauthorized)
				return
			}
			fmt.Fprint(w, `{"count": 0, "results": []}`)
		})
	api := httptest.NewServer(mux)
	defer api.Close()
	defer sso.Close()

	c := testClient(t, api.URL, sso.URL)
	c.token = "tok-stale"

	recs, err := c.Query(context.Background(), "Escherichia coli")
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Equal(t, 2, calls)
}

func TestSplitBinomial(t *testing.T) {
	g, e, ok := splitBinomial("Escherichia coli")
	require.True(t, ok)
	assert.Equal(t, "Escherichia", g)
	assert.Equal(t, "coli", e)

	_, _, ok = splitBinomial("Escherichia")
	assert.False(t, ok)
	_, _, ok = splitBinomial("Escherichia coli K-12 substrain")
	assert.False(t, ok)
}

func TestDecodeCandidatesMalformed(t *testing.T) {
	_, err := decodeCandidates([]byte("not json"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.BacDiveDecodeError, gnErr.Code)
}

func TestQueryCache(t *testing.T) {
	home := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptBacDiveUser("me@example.org"),
		config.OptBacDivePassword("secret"),
		config.OptBacDivePacingMs(1),
		config.OptHomeDir(home),
	})

	q, err := New(cfg)
	require.NoError(t, err)
	c := q.(*client)
	require.NotNil(t, c.cache)
	defer c.Close()

	raw := []byte(`{"results": {"5": {"strain number": "A"}}}`)
	c.cache.put("Escherichia coli", raw)

	got, ok := c.cache.get("Escherichia coli")
	require.True(t, ok)
	assert.Equal(t, raw, got)

	_, ok = c.cache.get("Bacteroides fragilis")
	assert.False(t, ok)

	// A cached species never touches the network: no API server exists,
	// yet the query succeeds.
	recs, err := c.Query(context.Background(), "Escherichia coli")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "A", recs[0]["strain number"])
}

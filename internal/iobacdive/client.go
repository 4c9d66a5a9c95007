// Package iobacdive implements the remote trait querier against the
// BacDive REST API (https://api.bacdive.dsmz.de). Authentication uses a
// password-grant token from the DSMZ SSO service; calls are paced with a
// rate limiter so the API is never hammered. Fetched candidate sets can be
// cached locally, so repeated runs only hit the network for new species.
package iobacdive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gntraits/pkg/config"
	"github.com/gnames/gntraits/pkg/harvest"
	"github.com/gnames/gntraits/pkg/record"
	"golang.org/x/time/rate"
)

const (
	// clientID is the public OAuth client the BacDive API documents for
	// password-grant access.
	clientID = "api.bacdive.public"

	// maxCandidates caps how many strain records are fetched per species.
	maxCandidates = 20

	requestTimeout = 30 * time.Second
)

type client struct {
	cfg     *config.Config
	httpCl  *http.Client
	limiter *rate.Limiter
	token   string
	cache   *queryCache
}

// New creates a BacDive trait querier from the configuration. The local
// response cache is opened when enabled and a home directory is known.
func New(cfg *config.Config) (harvest.TraitQuerier, error) {
	if cfg.BacDive.User == "" || cfg.BacDive.Password == "" {
		return nil, CredentialsError()
	}

	interval := time.Duration(cfg.BacDive.PacingMs) * time.Millisecond
	c := &client{
		cfg:     cfg,
		httpCl:  &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}

	if cfg.BacDive.UseCache && cfg.HomeDir != "" {
		cache, err := newQueryCache(config.QueryCacheDir(cfg.HomeDir))
		if err != nil {
			return nil, err
		}
		c.cache = cache
	}
	return c, nil
}

func (c *client) Login(ctx context.Context) error {
	form := url.Values{
		"grant_type": {"password"},
		"client_id":  {clientID},
		"username":   {c.cfg.BacDive.User},
		"password":   {c.cfg.BacDive.Password},
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.cfg.BacDive.TokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return AuthError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpCl.Do(req)
	if err != nil {
		return AuthError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AuthError(
			fmt.Errorf("token endpoint returned %s", resp.Status),
		)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return AuthError(err)
	}
	if tok.AccessToken == "" {
		return AuthError(fmt.Errorf("empty access token"))
	}
	c.token = tok.AccessToken
	slog.Info("Authenticated with BacDive",
		"user", c.cfg.BacDive.User)
	return nil
}

// Query returns the candidate records for a species binomial, ordered by
// strain ID. A species unknown to BacDive yields an empty set, not an
// error.
func (c *client) Query(
	ctx context.Context,
	species string,
) ([]record.Record, error) {
	if c.cache != nil {
		if raw, ok := c.cache.get(species); ok {
			slog.Debug("Cache hit", "species", species)
			return decodeCandidates(raw)
		}
	}

	genus, epithet, ok := splitBinomial(species)
	if !ok {
		slog.Debug("Not a binomial, skipping query",
			"species", species)
		return nil, nil
	}

	ids, err := c.search(ctx, genus, epithet)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > maxCandidates {
		ids = ids[:maxCandidates]
	}

	raw, err := c.fetch(ctx, ids)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.put(species, raw)
	}
	return decodeCandidates(raw)
}

func (c *client) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.close()
}

// search resolves a binomial to BacDive strain IDs.
func (c *client) search(
	ctx context.Context,
	genus, epithet string,
) ([]int64, error) {
	u := fmt.Sprintf("%s/taxon/%s/%s",
		c.cfg.BacDive.APIURL,
		url.PathEscape(genus), url.PathEscape(epithet),
	)
	body, status, err := c.getJSON(ctx, u)
	if err != nil {
		return nil, SearchError(genus+" "+epithet, err)
	}
	// An unknown taxon is an empty candidate set, not a failure.
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, SearchError(genus+" "+epithet,
			fmt.Errorf("search returned status %d", status))
	}

	var res struct {
		Count   int `json:"count"`
		Results []struct {
			ID int64 `json:"id"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, DecodeError(genus+" "+epithet, err)
	}

	ids := make([]int64, 0, len(res.Results))
	for _, r := range res.Results {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// fetch retrieves full strain records for the given IDs.
func (c *client) fetch(
	ctx context.Context,
	ids []int64,
) ([]byte, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	u := fmt.Sprintf("%s/fetch/%s",
		c.cfg.BacDive.APIURL, strings.Join(parts, ";"),
	)
	body, status, err := c.getJSON(ctx, u)
	if err != nil {
		return nil, FetchError(ids, err)
	}
	if status != http.StatusOK {
		return nil, FetchError(ids,
			fmt.Errorf("fetch returned status %d", status))
	}
	return body, nil
}

// getJSON performs an authorized GET. An expired token is refreshed once.
func (c *client) getJSON(
	ctx context.Context,
	u string,
) ([]byte, int, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, 0, err
		}
		req, err := http.NewRequestWithContext(
			ctx, http.MethodGet, u, nil,
		)
		if err != nil {
			return nil, 0, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpCl.Do(req)
		if err != nil {
			return nil, 0, err
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, resp.StatusCode, err
		}

		if resp.StatusCode == http.StatusUnauthorized && attempt == 0 {
			slog.Debug("Token expired, re-authenticating")
			if err := c.Login(ctx); err != nil {
				return nil, resp.StatusCode, err
			}
			continue
		}
		return body, resp.StatusCode, nil
	}
}

// decodeCandidates turns a raw fetch response into an ordered candidate
// set. The response keys records by strain ID; numeric ascending order
// keeps candidate sets deterministic between runs.
func decodeCandidates(raw []byte) ([]record.Record, error) {
	var res struct {
		Results map[string]record.Record `json:"results"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, DecodeError("fetch response", err)
	}

	keys := make([]string, 0, len(res.Results))
	for k := range res.Results {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.ParseInt(keys[i], 10, 64)
		b, errB := strconv.ParseInt(keys[j], 10, 64)
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	recs := make([]record.Record, 0, len(keys))
	for _, k := range keys {
		recs = append(recs, res.Results[k])
	}
	return recs, nil
}

// splitBinomial splits "Genus epithet" into its two parts.
func splitBinomial(species string) (string, string, bool) {
	parts := strings.Fields(species)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

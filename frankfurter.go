package fxconvert

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file contains the Frankfurter implementation of the RateProvider
// contract, and http utils to deal with remote services.

// FrankfurterURL is the default public endpoint of the Frankfurter API.
const FrankfurterURL = "https://api.frankfurter.dev/v1"

// requestTimeout bounds every provider call.
const requestTimeout = 10 * time.Second

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// get from disk
	// diskcache implements a unique key per day, so the local tmp expires
	// every day. That matches rate publication: a pair's latest rate can
	// only change on a new business day.
	key := fmt.Sprintf("%s %s %s", time.Now().Format(DateFormat), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client with a disk cache, all with daily expire.
func daily() *http.Client {
	client := new(http.Client)
	client.Timeout = requestTimeout
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// Frankfurter resolves rates against the Frankfurter API.
//
//	GET /latest?base=CCC&symbols=CCC      -> {"rates": {"CCC": n}, "date": "YYYY-MM-DD"}
//	GET /{YYYY-MM-DD}?base=CCC&symbols=CCC -> same shape
//	GET /currencies                        -> {"CCC": "Display Name", ...}
type Frankfurter struct {
	baseURL string
	client  *http.Client
}

// NewFrankfurter returns a provider against the public Frankfurter endpoint,
// with the daily disk cache.
func NewFrankfurter() *Frankfurter { return NewFrankfurterAt(FrankfurterURL) }

// NewFrankfurterAt returns a provider against an alternate endpoint.
func NewFrankfurterAt(baseURL string) *Frankfurter {
	return &Frankfurter{baseURL: baseURL, client: daily()}
}

var _ RateProvider = (*Frankfurter)(nil)

// unavailable logs the underlying cause and returns it wrapped in
// ErrUnavailable, the only error this provider ever reports.
func unavailable(cause error) error {
	log.Printf("frankfurter: %v", cause)
	return fmt.Errorf("%w: %v", ErrUnavailable, cause)
}

// fetchRate queries one pair at the given endpoint path and plucks the rate
// and effective date out of the untyped response.
func (f *Frankfurter) fetchRate(ctx context.Context, path, base, target string) (RatePoint, error) {
	addr := fmt.Sprintf("%s/%s?base=%s&symbols=%s",
		f.baseURL, path, url.QueryEscape(base), url.QueryEscape(target))

	var jobj any
	if err := jwget(ctx, f.client, addr, &jobj); err != nil {
		return RatePoint{}, unavailable(fmt.Errorf("error in wget %s/%s: %w", base, target, err))
	}

	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer, pluck then keep the first one if any.
	jval, err := jsonpath.Get("$.rates."+target, jobj)
	if err != nil {
		return RatePoint{}, unavailable(fmt.Errorf("no rate for %q in response: %w", target, err))
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	rate, ok := jval.(float64)
	if !ok {
		return RatePoint{}, unavailable(fmt.Errorf("rate for %q is not a number: %v", target, jval))
	}

	jdate, err := jsonpath.Get("$.date", jobj)
	if err != nil {
		return RatePoint{}, unavailable(fmt.Errorf("no date in response: %w", err))
	}
	dateText, ok := jdate.(string)
	if !ok {
		return RatePoint{}, unavailable(fmt.Errorf("date is not a string: %v", jdate))
	}
	on, err := ParseDate(dateText)
	if err != nil {
		return RatePoint{}, unavailable(err)
	}

	return RatePoint{Rate: decimal.NewFromFloat(rate), On: on}, nil
}

// FetchLatest returns the rate for the latest business day using /latest.
func (f *Frankfurter) FetchLatest(ctx context.Context, base, target string) (RatePoint, error) {
	return f.fetchRate(ctx, "latest", base, target)
}

// FetchOnDate returns the rate for a specific business day using /{date}.
// The returned RatePoint carries the date the provider actually served,
// which can be earlier than 'on' when that day has no published rate.
func (f *Frankfurter) FetchOnDate(ctx context.Context, base, target string, on Date) (RatePoint, error) {
	return f.fetchRate(ctx, on.String(), base, target)
}

// FetchCurrencies returns the supported currencies using /currencies.
func (f *Frankfurter) FetchCurrencies(ctx context.Context) (map[string]string, error) {
	content := make(map[string]string)
	if err := jwget(ctx, f.client, f.baseURL+"/currencies", &content); err != nil {
		return nil, unavailable(fmt.Errorf("error in wget currencies: %w", err))
	}
	return content, nil
}

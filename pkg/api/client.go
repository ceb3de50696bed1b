package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/tidwall/gjson"
)

type Client interface {
	Header(name, value string) Client
	Query(query Parameter) Client
	GET(ctx context.Context, opts ...Opt) (*Response, error)
}

type Generator interface {
	New(path string, args ...any) Client
}

type Opt interface {
	Do(defaultClient, *http.Request)
}

type Response struct {
	Code    int
	Header  http.Header
	RawBody []byte
	Body    gjson.Result
}

// OK reports whether the response has a 2xx status code.
func (r *Response) OK() bool {
	return r.Code >= 200 && r.Code < 300
}

type defaultGenerator struct {
	httpClient *http.Client
	domains    []string
}

// NewGenerator returns a generator of clients calling the given domains. Each
// call tries the domains in a random order until one of them answers.
func NewGenerator(httpClient *http.Client, domains ...string) *defaultGenerator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &defaultGenerator{httpClient: httpClient, domains: domains}
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	return &defaultClient{
		httpClient: g.httpClient,
		domains:    g.domains,
		path:       fmt.Sprintf(path, args...),
		headers:    make(http.Header),
	}
}

type defaultClient struct {
	httpClient *http.Client
	domains    []string
	method     string
	path       string
	headers    http.Header
	query      Parameter
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers[name] = []string{value}
	return c
}

func (c *defaultClient) Query(query Parameter) Client {
	c.query = query
	return c
}

func (c *defaultClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx, opts...)
}

func (c *defaultClient) call(ctx context.Context, opts ...Opt) (*Response, error) {
	perm := rand.Perm(len(c.domains))

	for _, index := range perm {
		url := c.domains[index] + c.path
		if c.query != nil {
			url = url + "?" + c.query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, c.method, url, nil)
		if err != nil {
			return nil, err
		}

		for h, values := range c.headers {
			for _, v := range values {
				req.Header.Add(h, v)
			}
		}

		for _, opt := range opts {
			opt.Do(*c, req)
		}

		result, err := c.httpClient.Do(req)
		if err != nil {
			xcontext.Logger(ctx).Warnf("An error occured when calling to %s: %v", url, err)
			continue
		}

		body, err := io.ReadAll(result.Body)
		result.Body.Close()
		if err != nil {
			xcontext.Logger(ctx).Warnf("An error occured when reading body of %s: %v", url, err)
			continue
		}

		response := &Response{
			Code:    result.StatusCode,
			Header:  result.Header,
			RawBody: body,
		}

		if len(body) > 0 {
			if !gjson.ValidBytes(body) {
				xcontext.Logger(ctx).Warnf("An error occured when parse body of %s", url)
				continue
			}
			response.Body = gjson.ParseBytes(body)
		}

		return response, nil
	}

	return nil, errors.New("all endpoints got errors")
}

package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/golang/glog"
)

const (
	ContentTypeJSON = "application/json"

	headerContentType = "Content-Type"
)

// RequestContext is a single prepared exchange against an absolute URL.
type RequestContext struct {
	Client      *http.Client
	Method      string
	Headers     map[string]string
	RequestBody []byte
	URL         *url.URL
}

func (r *RequestContext) Do(ctx context.Context) (*http.Response, error) {
	// a byte slice reader lets net/http replay the body when the broker
	// redirects the request to the topic owner
	var body io.Reader
	if r.RequestBody != nil {
		body = bytes.NewReader(r.RequestBody)
	}

	request, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), body)
	if err != nil {
		return nil, &TransportError{Method: r.Method, URL: r.URL.String(), Err: err}
	}

	for k, v := range r.Headers {
		request.Header.Set(k, v)
	}

	glog.V(4).Infof("%v %v", r.Method, r.URL)
	response, err := r.Client.Do(request)
	if err != nil {
		return nil, &TransportError{Method: r.Method, URL: r.URL.String(), Err: err}
	}

	return response, nil
}

// Body performs the request and returns the complete response body.
// Responses with a 4xx or 5xx status are returned as a *StatusError.
func (r *RequestContext) Body(ctx context.Context) ([]byte, error) {
	response, err := r.Do(ctx)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, &TransportError{Method: r.Method, URL: r.URL.String(), Err: err}
	}

	if response.StatusCode >= http.StatusBadRequest {
		glog.V(2).Infof("%v %v returned %v", r.Method, r.URL, response.StatusCode)
		return nil, newStatusError(r.Method, r.URL.String(), response.StatusCode, body)
	}

	return body, nil
}

// Status performs the request, discarding any response body on success.
func (r *RequestContext) Status(ctx context.Context) error {
	_, err := r.Body(ctx)
	return err
}

type Client interface {
	BaseURL() *url.URL
	Get(ctx context.Context, path string) ([]byte, error)
	Put(ctx context.Context, path, contentType string, body []byte) error
	PutJSON(ctx context.Context, path string, body []byte) error
	Delete(ctx context.Context, path string) error
}

func NewClient(baseURL *url.URL, client *http.Client) *DefaultClient {
	return NewHeaderedClient(baseURL, client, map[string]string{})
}

func NewHeaderedClient(baseURL *url.URL, client *http.Client, headers map[string]string) *DefaultClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &DefaultClient{
		baseURL:        baseURL,
		client:         client,
		defaultHeaders: headers,
	}
}

// DefaultClient issues every request against one fixed origin. It holds no
// mutable state, so a single value can be shared by any number of goroutines.
type DefaultClient struct {
	baseURL        *url.URL
	client         *http.Client
	defaultHeaders map[string]string
}

func (dc *DefaultClient) BaseURL() *url.URL {
	u := *dc.baseURL
	return &u
}

// Resolve resolves path against the origin using RFC 3986 reference
// resolution: an absolute path replaces the origin's path, a relative one
// is appended to its last segment.
func (dc *DefaultClient) Resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %v", path, err)
	}

	return dc.baseURL.ResolveReference(ref), nil
}

func (dc *DefaultClient) Get(ctx context.Context, path string) ([]byte, error) {
	r, err := dc.request(http.MethodGet, path, dc.defaultHeaders, nil)
	if err != nil {
		return nil, err
	}

	return r.Body(ctx)
}

func (dc *DefaultClient) Put(ctx context.Context, path, contentType string, body []byte) error {
	headers := make(map[string]string)
	for k, v := range dc.defaultHeaders {
		headers[k] = v
	}
	headers[headerContentType] = contentType

	if body == nil {
		body = []byte{}
	}

	r, err := dc.request(http.MethodPut, path, headers, body)
	if err != nil {
		return err
	}

	return r.Status(ctx)
}

func (dc *DefaultClient) PutJSON(ctx context.Context, path string, body []byte) error {
	return dc.Put(ctx, path, ContentTypeJSON, body)
}

func (dc *DefaultClient) Delete(ctx context.Context, path string) error {
	r, err := dc.request(http.MethodDelete, path, dc.defaultHeaders, nil)
	if err != nil {
		return err
	}

	return r.Status(ctx)
}

func (dc *DefaultClient) request(method, path string, headers map[string]string, body []byte) (*RequestContext, error) {
	u, err := dc.Resolve(path)
	if err != nil {
		return nil, &TransportError{Method: method, URL: path, Err: err}
	}

	return &RequestContext{
		Client:      dc.client,
		Method:      method,
		Headers:     headers,
		RequestBody: body,
		URL:         u,
	}, nil
}

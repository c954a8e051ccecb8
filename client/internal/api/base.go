package api

import (
	"context"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"

	errs "github.com/ougggg/pai-picture/client/internal/errors"
	"github.com/ougggg/pai-picture/client/internal/transport"
	"github.com/ougggg/pai-picture/client/internal/types"
)

// Doer performs a call through the shared transport.
type Doer interface {
	Do(ctx context.Context, spec transport.Spec) (*transport.Response, error)
}

const contentTypeJSON = "application/json"

// postJSON sends body as JSON with POST. Callers' options are applied last.
func postJSON[T any](ctx context.Context, d Doer, path string, body any, opts []transport.CallOption) (*types.Envelope[T], error) {
	spec := transport.Spec{
		Method: http.MethodPost,
		Path:   path,
		Header: http.Header{"Content-Type": {contentTypeJSON}},
		Body:   body,
	}
	return call[T](ctx, d, spec, opts)
}

// post sends a POST without a body.
func post[T any](ctx context.Context, d Doer, path string, opts []transport.CallOption) (*types.Envelope[T], error) {
	spec := transport.Spec{Method: http.MethodPost, Path: path, Header: http.Header{}}
	return call[T](ctx, d, spec, opts)
}

// get sends query as URL parameters with GET and no body.
func get[T any](ctx context.Context, d Doer, path string, query url.Values, opts []transport.CallOption) (*types.Envelope[T], error) {
	spec := transport.Spec{
		Method: http.MethodGet,
		Path:   path,
		Header: http.Header{},
		Query:  query,
	}
	return call[T](ctx, d, spec, opts)
}

func call[T any](ctx context.Context, d Doer, spec transport.Spec, opts []transport.CallOption) (*types.Envelope[T], error) {
	spec.Apply(opts...)
	resp, err := d.Do(ctx, spec)
	if err != nil {
		return nil, err
	}
	var env types.Envelope[T]
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, errs.NewDecodeError(spec.Method+" "+spec.Path, resp.StatusCode, resp.Body, err)
	}
	return &env, nil
}

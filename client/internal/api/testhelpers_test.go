package api

import (
	"context"
	"fmt"

	"github.com/ougggg/pai-picture/client/internal/transport"
)

// recordingDoer records the spec of every call and answers with body.
type recordingDoer struct {
	body  string
	specs []transport.Spec
}

func (r *recordingDoer) Do(_ context.Context, spec transport.Spec) (*transport.Response, error) {
	r.specs = append(r.specs, spec)
	return &transport.Response{Method: spec.Method, Path: spec.Path, StatusCode: 200, Body: []byte(r.body)}, nil
}

func (r *recordingDoer) last() transport.Spec { return r.specs[len(r.specs)-1] }

// failingDoer always fails (simulates a transport failure).
type failingDoer struct{}

func (failingDoer) Do(context.Context, transport.Spec) (*transport.Response, error) {
	return nil, fmt.Errorf("boom")
}

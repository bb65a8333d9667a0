// Package mocks provides an in-memory tracer that records scopes instead of exporting spans.
package mocks

import (
	"bestevents/infras/otel"
	"context"
	"sync"
)

type Recorder struct {
	mu     sync.Mutex
	scopes []*Scope
}

func NewOtel() *Recorder {
	return &Recorder{}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{ScopeName: scopeName, SpanName: spanName, attributes: map[string]any{}}

	r.mu.Lock()
	r.scopes = append(r.scopes, scope)
	r.mu.Unlock()

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns the span names in the order they were opened.
func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(r.scopes))
	for i, scope := range r.scopes {
		names[i] = scope.SpanName
	}

	return names
}

// Errors returns every error traced by any scope.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, scope := range r.scopes {
		errs = append(errs, scope.Errors()...)
	}

	return errs
}

type Scope struct {
	ScopeName string
	SpanName  string

	mu         sync.Mutex
	attributes map[string]any
	events     []string
	errs       []error
	ended      bool
}

func (s *Scope) End() {
	s.mu.Lock()
	s.ended = true
	s.mu.Unlock()
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	s.errs = append(s.errs, err)
	s.mu.Unlock()
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	s.events = append(s.events, name)
	s.mu.Unlock()
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	s.attributes[key] = value
	s.mu.Unlock()
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	s.mu.Lock()
	for key, value := range attributes {
		s.attributes[key] = value
	}
	s.mu.Unlock()
}

func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]error(nil), s.errs...)
}

func (s *Scope) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}

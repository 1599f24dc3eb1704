package parser

import (
	"context"
	"time"

	"github.com/Kjwon15/libearth/feed"
)

// SourceResolver fetches and parses an external feed document, returning
// its channel-level metadata with entry parsing disabled. The Parser is
// the production implementation; tests inject stubs so dispatch can be
// exercised without network access.
type SourceResolver interface {
	ResolveSource(ctx context.Context, url string) (*feed.Feed, error)
}

// Session carries the ambient context of one parse call: where the
// document came from and which time zone its zone-less dates are written
// in. Handlers receive it by value and may return a modified copy, which
// becomes the session for all subsequent dispatch in that call.
//
// A Session never outlives its parse call and never holds references into
// the document tree.
type Session struct {
	// URL is the origin of the document being parsed. It resolves
	// relative references and seeds the synthesized identifier and self
	// link when the document provides none. Empty when unknown.
	URL string

	// Timezone applies to timestamps that carry no UTC offset. Sessions
	// built by NewSession always have one; a nil Timezone is treated as
	// UTC.
	Timezone *time.Location

	// env bundles the per-call collaborators. It rides along unchanged on
	// handler-modified session copies.
	env *parseEnv
}

type parseEnv struct {
	ctx      context.Context
	resolver SourceResolver
	logger   Logger
}

// NewSession returns a Session rooted at the given origin URL. A nil
// location defaults to UTC.
func NewSession(url string, tz *time.Location) Session {
	if tz == nil {
		tz = time.UTC
	}
	return Session{URL: url, Timezone: tz}
}

// WithContext returns a copy of the session whose parse call runs under
// ctx.
func (s Session) WithContext(ctx context.Context) Session {
	env := s.cloneEnv()
	env.ctx = ctx
	s.env = env
	return s
}

// WithResolver returns a copy of the session that delegates nested source
// resolution to r.
func (s Session) WithResolver(r SourceResolver) Session {
	env := s.cloneEnv()
	env.resolver = r
	s.env = env
	return s
}

// WithLogger returns a copy of the session that logs through l.
func (s Session) WithLogger(l Logger) Session {
	env := s.cloneEnv()
	env.logger = l
	s.env = env
	return s
}

// Context returns the context the parse call runs under.
func (s Session) Context() context.Context {
	if s.env != nil && s.env.ctx != nil {
		return s.env.ctx
	}
	return context.Background()
}

func (s Session) cloneEnv() *parseEnv {
	if s.env == nil {
		return &parseEnv{}
	}
	cp := *s.env
	return &cp
}

func (s Session) resolver() SourceResolver {
	if s.env == nil {
		return nil
	}
	return s.env.resolver
}

func (s Session) logger() Logger {
	if s.env == nil || s.env.logger == nil {
		return NopLogger{}
	}
	return s.env.logger
}

func (s Session) location() *time.Location {
	if s.Timezone == nil {
		return time.UTC
	}
	return s.Timezone
}

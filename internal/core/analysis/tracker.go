// Package analysis drives the simulated accessibility analysis: input
// checks, the loading/result lifecycle and the delayed payload delivery.
package analysis

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/colonyops/accessihome/internal/core/report"
)

var (
	// ErrEmptyInput is returned when the listing URL is empty or only whitespace.
	ErrEmptyInput = errors.New("please enter a valid URL")
	// ErrBusy is returned under OverlapIgnore while a request is pending.
	ErrBusy = errors.New("an analysis is already running")
)

// OverlapPolicy decides what happens when an analysis is requested while
// another one is still pending.
type OverlapPolicy string

const (
	// OverlapReplace supersedes the pending request. Its completion is
	// discarded when it eventually arrives.
	OverlapReplace OverlapPolicy = "replace"
	// OverlapIgnore rejects the new request with ErrBusy.
	OverlapIgnore OverlapPolicy = "ignore"
)

// IsValid reports whether p is a supported policy.
func (p OverlapPolicy) IsValid() bool {
	return p == OverlapReplace || p == OverlapIgnore
}

// Request identifies one analysis run.
type Request struct {
	ID        string
	URL       string
	Listing   string // recognized listing site, empty when unknown
	StartedAt time.Time
}

// Tracker owns the loading and result state of the analysis view. It is not
// safe for concurrent use; the TUI mutates it only from its update loop.
type Tracker struct {
	policy  OverlapPolicy
	matcher *ListingMatcher
	now     func() time.Time

	pending *Request
	result  *report.Analysis
	last    *Request
	err     error
}

// NewTracker creates an idle tracker. A nil matcher disables listing
// recognition.
func NewTracker(policy OverlapPolicy, matcher *ListingMatcher) *Tracker {
	if !policy.IsValid() {
		policy = OverlapReplace
	}
	return &Tracker{
		policy:  policy,
		matcher: matcher,
		now:     time.Now,
	}
}

// Policy returns the overlap policy in effect.
func (t *Tracker) Policy() OverlapPolicy {
	return t.policy
}

// Begin validates input and enters the loading state. On success any
// previous result is cleared. Under OverlapReplace a pending request is
// superseded; callers holding its work should cancel it.
func (t *Tracker) Begin(input string) (Request, error) {
	url := strings.TrimSpace(input)
	if url == "" {
		return Request{}, ErrEmptyInput
	}

	if t.pending != nil && t.policy == OverlapIgnore {
		return Request{}, fmt.Errorf("request %s pending: %w", t.pending.ID, ErrBusy)
	}

	req := Request{
		ID:        uuid.NewString(),
		URL:       url,
		StartedAt: t.now(),
	}
	if t.matcher != nil {
		req.Listing = t.matcher.Match(url)
	}

	t.pending = &req
	t.result = nil
	t.err = nil

	return req, nil
}

// Complete stores result for the pending request with the given id and
// leaves the loading state. Completions for any other id are stale and are
// ignored; the return value reports whether result was accepted.
func (t *Tracker) Complete(id string, result *report.Analysis) bool {
	if t.pending == nil || t.pending.ID != id {
		return false
	}
	t.last = t.pending
	t.pending = nil
	t.result = result
	return true
}

// Fail leaves the loading state for the pending request with the given id
// and records err. Stale ids are ignored.
func (t *Tracker) Fail(id string, err error) bool {
	if t.pending == nil || t.pending.ID != id {
		return false
	}
	t.last = t.pending
	t.pending = nil
	t.err = err
	return true
}

// Loading reports whether a request is pending.
func (t *Tracker) Loading() bool {
	return t.pending != nil
}

// Pending returns the pending request.
func (t *Tracker) Pending() (Request, bool) {
	if t.pending == nil {
		return Request{}, false
	}
	return *t.pending, true
}

// Result returns the latest accepted analysis, or nil.
func (t *Tracker) Result() *report.Analysis {
	return t.result
}

// LastRequest returns the request that produced the current result or error.
func (t *Tracker) LastRequest() (Request, bool) {
	if t.last == nil {
		return Request{}, false
	}
	return *t.last, true
}

// Err returns the error of the last finished request.
func (t *Tracker) Err() error {
	return t.err
}

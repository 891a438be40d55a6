// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

// Package httputils provides http.RoundTripper decorators used by the
// outbound clients.
package httputils

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"
)

const redacted = "REDACTED"

// secretParams are query parameters never written to a trace.
var secretParams = []string{"key", "signature", "client"}

// LoggingRoundTripper writes a trace of every request and response to
// Writer. API keys in the query string and the Authorization header are
// redacted. A nil Writer disables tracing.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Writer    io.Writer
	DumpBody  bool
}

// abbreviate prefixes every line and caps the trace size.
func abbreviate(lines []string, prefix rune) []string {
	const maxLines, maxChars = 2048, 512

	if len(lines) > maxLines {
		lines = append(lines[:maxLines], "…")
	}

	for i, line := range lines {
		line = fmt.Sprintf("%c %s", prefix, line)
		if len(line) > maxChars {
			line = line[0:maxChars] + "…"
		}

		lines[i] = line
	}

	return lines
}

// RedactURL returns a copy of u with the secret query parameters masked.
func RedactURL(u *url.URL) *url.URL {
	out := *u
	q := out.Query()

	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, redacted)
		}
	}

	out.RawQuery = q.Encode()

	return &out
}

func (t *LoggingRoundTripper) dumpRequest(req *http.Request) error {
	// the clone has no body so the original one is left unread
	clone := req.Clone(req.Context())
	clone.URL = RedactURL(req.URL)
	clone.Body = nil
	clone.ContentLength = 0

	if clone.Header.Get("Authorization") != "" {
		clone.Header.Set("Authorization", redacted)
	}

	dump, err := httputil.DumpRequestOut(clone, false)
	if err != nil {
		return fmt.Errorf("tracing HTTP request: %w", err)
	}

	lines := abbreviate(strings.Split(string(dump), "\n"), '>')
	lines = append(lines, "")
	_, err = fmt.Fprint(t.Writer, strings.Join(lines, "\n"))

	return err
}

func (t *LoggingRoundTripper) dumpResponse(resp *http.Response, duration time.Duration) error {
	dump, err := httputil.DumpResponse(resp, t.DumpBody)
	if err != nil {
		return fmt.Errorf("tracing HTTP response: %w", err)
	}

	lines := abbreviate(strings.Split(string(dump), "\n"), '<')

	if _, err := fmt.Fprintf(t.Writer, "< RESPONSE: [%v]\n", duration); err != nil {
		return fmt.Errorf("tracing HTTP response: %w", err)
	}

	lines = append(lines, "")
	_, err = fmt.Fprint(t.Writer, strings.Join(lines, "\n"))

	return err
}

// RoundTrip implements the http.RoundTripper interface.
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Writer == nil {
		return t.Transport.RoundTrip(req)
	}

	if err := t.dumpRequest(req); err != nil {
		return nil, err
	}

	start := time.Now()

	resp, err := t.Transport.RoundTrip(req)
	if err != nil {
		fmt.Fprintf(t.Writer, "< ERROR: [%v] %v\n", time.Since(start), err)

		return nil, err
	}

	if err := t.dumpResponse(resp, time.Since(start)); err != nil {
		return nil, err
	}

	return resp, nil
}

// AppendRequestHeadersRoundTripper adds headers to the request.
type AppendRequestHeadersRoundTripper struct {
	Transport http.RoundTripper
	Headers   map[string]string
}

// RoundTrip implements the http.RoundTripper interface.
func (t *AppendRequestHeadersRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	for k, v := range t.Headers {
		req.Header.Set(k, v)
	}

	return t.Transport.RoundTrip(req)
}

// NewTransport stacks the decorators on top of base (http.DefaultTransport
// when nil). trace may be nil.
func NewTransport(base http.RoundTripper, userAgent string, trace io.Writer) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	var rt http.RoundTripper = base

	if trace != nil {
		rt = &LoggingRoundTripper{Transport: rt, Writer: trace, DumpBody: true}
	}

	if userAgent != "" {
		rt = &AppendRequestHeadersRoundTripper{Transport: rt, Headers: map[string]string{"User-Agent": userAgent}}
	}

	return rt
}

// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultTimezone is used when Options.Timezone is empty.
const DefaultTimezone = "America/Los_Angeles"

// DateLayout formats the capture date in the verbose output and Date.
const DateLayout = "2006-01-02"

// ErrInvalidTimezone is returned by New when the timezone identifier is not
// found in the timezone database.
var ErrInvalidTimezone = errors.New("invalid timezone identifier")

// Options carries the construction inputs. Empty strings mean "not provided".
type Options struct {
	Project string

	// Credential sources: a file path or an embedded blob. Kept opaque.
	Service string
	Client  string
	User    string

	Key string

	Timezone    string
	Verbose     bool
	Browserless bool

	// Sink receives the capture lines when Verbose is set. Nil discards them.
	Sink Sink
	// Clock overrides time.Now; tests use it to pin the capture.
	Clock func() time.Time
}

// Configuration is a read-only snapshot of one pipeline run's settings.
type Configuration struct {
	project     string
	service     string
	client      string
	user        string
	key         string
	timezone    string
	location    *time.Location
	verbose     bool
	browserless bool
	now         time.Time
}

// New resolves the timezone, captures the current time in it and returns the
// snapshot. It fails fast with ErrInvalidTimezone and never returns a partial value.
func New(opts Options) (*Configuration, error) {
	tz := strings.TrimSpace(opts.Timezone)
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := LoadTimezone(tz)
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	c := &Configuration{
		project:     opts.Project,
		service:     opts.Service,
		client:      opts.Client,
		user:        opts.User,
		key:         opts.Key,
		timezone:    tz,
		location:    loc,
		verbose:     opts.Verbose,
		browserless: opts.Browserless,
		now:         clock().In(loc),
	}

	if c.verbose && opts.Sink != nil {
		opts.Sink.Emit("DATE: " + c.Date())
		opts.Sink.Emit(fmt.Sprintf("HOUR: %d", c.Hour()))
	}
	return c, nil
}

// LoadTimezone resolves an IANA identifier. Unknown identifiers, and the
// empty string, are reported as ErrInvalidTimezone.
func LoadTimezone(id string) (*time.Location, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidTimezone)
	}
	// "Local" is the host zone, not a tz database entry.
	if id == "Local" {
		return nil, fmt.Errorf("%w: %q is host dependent", ErrInvalidTimezone, id)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, id, err)
	}
	return loc, nil
}

// Field accessors. Credential sources and the key are returned as given;
// an empty string means the value was not configured.

func (c *Configuration) Project() string   { return c.project }
func (c *Configuration) Service() string   { return c.service }
func (c *Configuration) Client() string    { return c.client }
func (c *Configuration) User() string      { return c.user }
func (c *Configuration) Key() string       { return c.key }
func (c *Configuration) Timezone() string  { return c.timezone }
func (c *Configuration) Verbose() bool     { return c.verbose }
func (c *Configuration) Browserless() bool { return c.browserless }

// Location is the resolved timezone handle.
func (c *Configuration) Location() *time.Location { return c.location }

// Now returns the timestamp captured by New. It does not advance.
func (c *Configuration) Now() time.Time { return c.now }

// Date is the calendar date of the capture, formatted with DateLayout.
func (c *Configuration) Date() string { return c.now.Format(DateLayout) }

// Hour is the hour (0-23) of the capture in the configured timezone.
func (c *Configuration) Hour() int { return c.now.Hour() }

// AuthMode classifies the available credentials; see AuthModeFor.
func (c *Configuration) AuthMode() AuthMode { return AuthModeFor(c.user, c.service) }

// Fingerprint returns the cache key for the project; see Fingerprint.
func (c *Configuration) Fingerprint() string { return Fingerprint(c.project) }

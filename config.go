// seehuhn.de/go/tessellate - a planar-sweep geometry engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tessellate

// Config holds the optional, rarely-changed settings for the sweep
// operations, applied through functional options (the pattern the geometry
// packages in this module's dependency graph use for their own optional
// settings).
type Config struct {
	// MaxCapacity bounds the event heap and edge arena a single sweep may
	// grow to. Zero means unbounded, limited only by available memory.
	MaxCapacity int

	// Trace, when non-nil, receives a line of diagnostic text for every
	// batch of sweep events sharing one sweep point. It is meant for debugging small inputs; it is
	// never called in a way that affects output, and leaving it nil has
	// no performance cost beyond a nil check.
	Trace func(string)
}

// Option configures a Config.
type Option func(*Config)

// WithMaxCapacity bounds the event heap and edge arena a sweep may use.
// Exceeding it surfaces as ErrOutOfMemory rather than growing without
// limit.
func WithMaxCapacity(n int) Option {
	return func(c *Config) { c.MaxCapacity = n }
}

// WithTrace installs a diagnostic callback invoked once per batch of sweep
// events sharing one sweep point.
func WithTrace(fn func(string)) Option {
	return func(c *Config) { c.Trace = fn }
}

// newConfig builds a Config from the given options, starting from the
// zero value (unbounded capacity, no tracing).
func newConfig(opts []Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Package filesystem wraps afero so tests can swap the OS filesystem for an in-memory one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active filesystem backend.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native OS backend.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

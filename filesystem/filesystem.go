// Package filesystem holds the afero backend behind every file the application touches.
// Tests replace it with an in-memory filesystem.
package filesystem

import "github.com/spf13/afero"

var backend afero.Fs = afero.NewOsFs()

// API returns the active backend wrapped with the afero helpers.
func API() afero.Afero {
	return afero.Afero{Fs: backend}
}

// Swap installs fs as the backend and returns a function that restores the previous one.
func Swap(fs afero.Fs) (restore func()) {
	previous := backend
	backend = fs
	return func() { backend = previous }
}

// SetMemMapFs switches to a fresh in-memory backend.
func SetMemMapFs() {
	backend = afero.NewMemMapFs()
}

// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Every read and write of the application goes through API(), so tests can swap
// the operating system backend for an in-memory one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance.
func API() afero.Afero {
	return backend
}

// SetFs replaces the backend with an arbitrary afero.Fs.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	SetFs(afero.NewOsFs())
}

// SetMemMapFs installs a volatile in-memory backend for unit tests.
func SetMemMapFs() {
	SetFs(afero.NewMemMapFs())
}

// Package filesystem provides the filesystem primitives gobtop reads through.
//
// Everything is expressed on top of afero.Fs so the config loader and path
// discovery run unchanged against the OS filesystem or an in-memory one.
package filesystem

// Package config holds gobtop's typed settings store.
//
// Every setting gobtop knows about is declared once in the embedded schema
// (embedded/schema.toml) with its type, default and help text. A Store keeps
// the live values in three typed tables (string, bool and int), loads the
// line-oriented config file, validates each value and reports rejected ones as
// warnings instead of failing the load.
//
// While the store is locked, writes are buffered and only become visible when
// the store is unlocked again, so a background writer never sees a half
// applied set of changes.
package config

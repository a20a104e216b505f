// Package testutil provides test environments for gobtop commands.
//
// Key components:
//   - TestEnvironment: config directory, locale and filesystem for one test
//
// Usage guidelines:
//   - Use EnvMemoryOnly for code that takes an afero.Fs
//   - Use EnvIsolated for code that reads the real filesystem, such as commands
//   - All test data should be defined inline, not in external files
package testutil

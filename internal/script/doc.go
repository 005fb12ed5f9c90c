// Package script runs Lua editing scenarios against a composer
// model. Scripts drive the model through a registered "composer"
// module and assert intermediate states in example format, which
// makes recorded editing sessions replayable as regression tests.
//
// gopher-lua's LState is not goroutine-safe; a Harness owns one state
// and must be driven from a single goroutine.
package script

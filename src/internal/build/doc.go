// Package build drives SCons for the lua_bridge addon and installs what it
// produces into the addon's per-platform bin directories.
//
// Every routine is sequential: one SCons process runs at a time and is
// awaited before the next starts. A (platform, configuration) pair is only
// copied after its build succeeded, and BuildAll keeps going after a pair
// fails so that as many pairs as possible get built in a single run.
//
// Results are reported twice: as status lines printed through the ui
// package, and as Go errors (or a Summary) for callers.
package build

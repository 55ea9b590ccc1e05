// Package input turns the device's per-frame snapshots into edge events.
//
// The device reports only instantaneous state. Controllers keeps the
// previous frame's report next to the current one for each slot, so Pressed
// and Released can be derived by comparing the two. Mouse edges come from
// the device's own current/previous masks; keys are reported as raw
// voxie_keystat states and are not diffed.
package input

// Package profile defines terminal profiles: named bundles of presentation
// and behavior settings that are resolved into [settings.TerminalSettings]
// when a session starts.
//
// A profile is read from and written to a JSON object in which every field
// has its own key. Reading is tolerant: missing keys leave the field at its
// default, values of the wrong type are ignored, unknown keys are skipped,
// and unrecognized enum tokens fall back to the enum's default. Writing
// emits optional keys only when the field is set.
//
// A profile without an explicit GUID is identified by a GUID derived from
// its name (see [guid.FromName]).
package profile

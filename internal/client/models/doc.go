// Package models defines the JSON payloads exchanged with the SkillSphere
// backend and the form inputs the CLI collects before sending them.
//
// Timestamps are kept as strings: the backend emits zone-less local date
// times (e.g. "2025-04-18T09:30:00") that do not parse as RFC 3339.
package models

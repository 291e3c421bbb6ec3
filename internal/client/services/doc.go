// Package services contains the application services behind the SkillSphere
// CLI views.
//
// Every call that needs a bearer credential takes it from the session
// (missing credential: common.ErrNotAuthenticated, no backend call),
// validates its input locally (*common.ValidationError, no backend call)
// and routes the backend's error through the session guard, so an
// authorization-denied answer anywhere ends the session.
package services

// Package cli provides the interactive SkillSphere command-line client.
//
// The App plays the part of the views: every REPL command reads the shared
// session state, calls a service and renders the result. Navigation side
// effects of login, register and logout arrive through App.Navigate, and a
// session subscriber prints notifications as they appear.
//
// The REPL is started with App.Run(ctx), which blocks until the user exits
// or the input ends.
package cli

// Package plans defines the built-in patch plans and a registry for
// looking them up by name.
//
// Each plan is a declarative configuration of the patch engine: guards,
// structural prerequisites, and an ordered list of edit directives with
// opaque content payloads. Two documents are covered: the options page
// markup (options.html) and its companion script (options.js).
package plans

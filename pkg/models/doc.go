// Package models provides shared data models and types for lintwiz.
//
// This package contains the project-type enumeration, the setup option
// record, and the package-manager enumeration used across the catalog,
// rule, and installer packages.
//
// # Project Types
//
// Six JavaScript ecosystems are supported:
//   - Next.js, React, Node.js, Angular, Vue, Svelte
//
// Use [ProjectType] and its constants:
//
//	pt := models.ProjectTypeReact
//	if pt.IsValid() {
//	    fmt.Println("Configuring", pt.Label())
//	}
//
// # Setup Options
//
// [SetupOptions] is constructed once from validated answers and read-only
// afterward. The single exception is the Svelte TypeScript auto-detection,
// which derives a corrected copy via [SetupOptions.WithTypeScript].
package models

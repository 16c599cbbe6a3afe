package models

// ProjectType identifies the JavaScript ecosystem being configured.
// Immutable once selected; it drives every downstream rule lookup.
type ProjectType string

const (
	ProjectTypeNextJS  ProjectType = "nextjs"
	ProjectTypeReact   ProjectType = "react"
	ProjectTypeNodeJS  ProjectType = "nodejs"
	ProjectTypeAngular ProjectType = "angular"
	ProjectTypeVue     ProjectType = "vue"
	ProjectTypeSvelte  ProjectType = "svelte"
)

// ValidProjectTypes returns all supported project type values.
func ValidProjectTypes() []ProjectType {
	return []ProjectType{
		ProjectTypeNextJS,
		ProjectTypeReact,
		ProjectTypeNodeJS,
		ProjectTypeAngular,
		ProjectTypeVue,
		ProjectTypeSvelte,
	}
}

// ProjectTypeStrings returns valid project type values as plain strings,
// in the same order as ValidProjectTypes.
func ProjectTypeStrings() []string {
	types := ValidProjectTypes()
	strs := make([]string, len(types))
	for i, t := range types {
		strs[i] = string(t)
	}
	return strs
}

// IsValid checks if the project type is a supported value.
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeNextJS, ProjectTypeReact, ProjectTypeNodeJS,
		ProjectTypeAngular, ProjectTypeVue, ProjectTypeSvelte:
		return true
	}
	return false
}

// Label returns the display name for the project type.
func (t ProjectType) Label() string {
	switch t {
	case ProjectTypeNextJS:
		return "Next.js"
	case ProjectTypeReact:
		return "React"
	case ProjectTypeNodeJS:
		return "Node.js"
	case ProjectTypeAngular:
		return "Angular"
	case ProjectTypeVue:
		return "Vue"
	case ProjectTypeSvelte:
		return "Svelte"
	}
	return string(t)
}

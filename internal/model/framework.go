package model

import (
	"fmt"
	"strings"
)

// Framework identifies the framework variant a project was scaffolded with.
type Framework string

const (
	// FrameworkVue is a Vite based Vue.js project created by create-vue.
	FrameworkVue Framework = "vue"
	// FrameworkNuxt is a Nuxt project created by create-nuxt.
	FrameworkNuxt Framework = "nuxt"
)

// Frameworks lists every supported framework in prompt order.
var Frameworks = []Framework{FrameworkVue, FrameworkNuxt}

// ParseFramework converts a user supplied identifier into a Framework.
func ParseFramework(value string) (Framework, error) {
	framework := Framework(strings.ToLower(strings.TrimSpace(value)))
	if !framework.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFramework, value)
	}

	return framework, nil
}

// Valid reports whether f is one of the supported frameworks.
func (f Framework) Valid() bool {
	switch f {
	case FrameworkVue, FrameworkNuxt:
		return true
	}

	return false
}

// Label is the human readable framework name.
func (f Framework) Label() string {
	switch f {
	case FrameworkVue:
		return "Vue.js"
	case FrameworkNuxt:
		return "Nuxt"
	}

	return string(f)
}

// String implements fmt.Stringer.
func (f Framework) String() string {
	return string(f)
}

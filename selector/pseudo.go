package selector

import (
	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/token"
)

// pseudoClasses lists the pseudo-classes that take no arguments.
var pseudoClasses = map[string]bool{
	"active":             true,
	"any-link":           true,
	"autofill":           true,
	"blank":              true,
	"checked":            true,
	"current":            true,
	"default":            true,
	"defined":            true,
	"disabled":           true,
	"empty":              true,
	"enabled":            true,
	"first":              true,
	"first-child":        true,
	"first-of-type":      true,
	"focus":              true,
	"focus-visible":      true,
	"focus-within":       true,
	"fullscreen":         true,
	"future":             true,
	"host":               true,
	"hover":              true,
	"in-range":           true,
	"indeterminate":      true,
	"invalid":            true,
	"last-child":         true,
	"last-of-type":       true,
	"left":               true,
	"link":               true,
	"local-link":         true,
	"modal":              true,
	"only-child":         true,
	"only-of-type":       true,
	"optional":           true,
	"out-of-range":       true,
	"past":               true,
	"paused":             true,
	"picture-in-picture": true,
	"placeholder-shown":  true,
	"playing":            true,
	"popover-open":       true,
	"read-only":          true,
	"read-write":         true,
	"required":           true,
	"right":              true,
	"root":               true,
	"scope":              true,
	"target":             true,
	"target-within":      true,
	"user-invalid":       true,
	"user-valid":         true,
	"valid":              true,
	"visited":            true,
}

// functionalPseudoClasses lists the pseudo-classes that require arguments.
var functionalPseudoClasses = map[string]bool{
	"dir":              true,
	"has":              true,
	"host-context":     true,
	"is":               true,
	"lang":             true,
	"not":              true,
	"nth-child":        true,
	"nth-last-child":   true,
	"nth-last-of-type": true,
	"nth-of-type":      true,
	"where":            true,
}

// listPseudoClasses take a selector list argument.
var listPseudoClasses = map[string]bool{
	"has":   true,
	"is":    true,
	"not":   true,
	"where": true,
}

// pseudoElements lists the pseudo-elements that take no arguments.
var pseudoElements = map[string]bool{
	"after":                true,
	"backdrop":             true,
	"before":               true,
	"cue":                  true,
	"file-selector-button": true,
	"first-letter":         true,
	"first-line":           true,
	"grammar-error":        true,
	"marker":               true,
	"placeholder":          true,
	"selection":            true,
	"spelling-error":       true,
	"target-text":          true,
}

// legacyPseudoElements may be written with a single colon.
var legacyPseudoElements = map[string]bool{
	"after":        true,
	"before":       true,
	"first-letter": true,
	"first-line":   true,
}

// lookupPseudoClass returns the argument-less pseudo-class called name.
func lookupPseudoClass(name string, pos token.Pos) (Selector, error) {
	switch {
	case pseudoClasses[name]:
		return PseudoClass{Name: name}, nil
	case functionalPseudoClasses[name]:
		return nil, diag.New(diag.ExpectedArguments, pos)
	}
	return nil, diag.Named(diag.UnknownPseudoClass, pos, name)
}

// lookupPseudoElement returns the argument-less pseudo-element called name.
func lookupPseudoElement(name string, pos token.Pos) (Selector, error) {
	switch name {
	case "slotted", "part", "highlight":
		return nil, diag.New(diag.ExpectedArguments, pos)
	}
	if pseudoElements[name] {
		return PseudoElement{Name: name}, nil
	}
	return nil, diag.Named(diag.UnknownPseudoElement, pos, name)
}

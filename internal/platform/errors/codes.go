// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Registry errors
	CodeMaterialKeyEmpty           Code = "MATERIAL_KEY_EMPTY"
	CodeMaterialDuplicate          Code = "MATERIAL_DUPLICATE"
	CodeRockSubgroupInvalid        Code = "ROCK_SUBGROUP_INVALID"
	CodeInvalidRange               Code = "MATERIAL_INVALID_RANGE"
	CodeAlloyComponentNotElement   Code = "ALLOY_COMPONENT_NOT_ELEMENT"
	CodeAlloyComponentUnknown      Code = "ALLOY_COMPONENT_UNKNOWN"
	CodeAlloyComponentMissing      Code = "ALLOY_COMPONENT_MISSING"
	CodeElementInvalidSymbol       Code = "ELEMENT_INVALID_SYMBOL"
	CodeElementInvalidAtomicNumber Code = "ELEMENT_INVALID_ATOMIC_NUMBER"
	CodeMetalFamilyInvalid         Code = "METAL_FAMILY_INVALID"

	// Localization errors
	CodeTranslationMissing  Code = "TRANSLATION_MISSING"
	CodeUnsupportedLanguage Code = "UNSUPPORTED_LANGUAGE"
)

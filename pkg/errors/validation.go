package errors

import "strings"

// validFormats is the set of output formats the sinks support.
var validFormats = map[string]bool{"svg": true, "json": true, "png": true}

// validThemes is the set of visual themes the styles package defines.
var validThemes = map[string]bool{"paper": true, "blueprint": true}

// ValidateFormat checks that an output format is supported.
func ValidateFormat(format string) error {
	if !validFormats[format] {
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTheme checks that a theme name is known. The empty string is
// allowed and means the default theme.
func ValidateTheme(theme string) error {
	if theme != "" && !validThemes[theme] {
		return New(ErrCodeInvalidTheme, "invalid theme: %q (must be one of: paper, blueprint)", theme)
	}
	return nil
}

// ValidateOutputPath rejects output paths that are empty or contain
// traversal sequences. It deliberately does not check for existence; the
// caller decides whether to overwrite.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidPath, "output path contains a null byte")
	}
	return nil
}

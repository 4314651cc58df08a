package searchpath

import "fmt"

// PatternSyntaxError reports invalid pattern text: an empty pattern, an
// unclosed bracket expression, or a regex the engine rejects.
type PatternSyntaxError struct {
	// Pattern is the offending pattern text.
	Pattern string

	// Message describes the syntax problem.
	Message string

	// Position is the byte offset of the error within Pattern, or -1
	// when unknown.
	Position int

	// Err is the underlying engine error, if any.
	Err error
}

func (e *PatternSyntaxError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("invalid pattern %q at position %d: %s",
			e.Pattern, e.Position, e.Message)
	}
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Message)
}

func (e *PatternSyntaxError) Unwrap() error { return e.Err }

// syntaxErr builds a PatternSyntaxError with no position information.
func syntaxErr(pattern, message string) *PatternSyntaxError {
	return &PatternSyntaxError{Pattern: pattern, Message: message, Position: -1}
}

// PatternFileError reports a failure reading a pattern file through the
// strict loader (LoadPatterns, Options.IncludeFrom/ExcludeFrom). Ancestor
// pattern files are loaded leniently and never produce this error.
type PatternFileError struct {
	// Path is the pattern file that failed to load.
	Path string

	// Message describes the failure.
	Message string

	// Line is the 1-based line number of the failure, or 0 when unknown.
	Line int

	// Err is the underlying filesystem error, if any.
	Err error
}

func (e *PatternFileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("pattern file %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("pattern file %s: %s", e.Path, e.Message)
}

func (e *PatternFileError) Unwrap() error { return e.Err }

// ConfigurationError reports an invalid search path construction, such as
// a search configured with no usable roots.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "invalid search path configuration: " + e.Message
}

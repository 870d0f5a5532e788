// Package config is the plain-data options record threaded through the
// lexer, parser and reconstructor, mirroring the public façade's Config
// without creating an import cycle back to the root
// package.
package config

// Options is the pipeline-internal view of the public façade's Config.
type Options struct {
	WrapMultiRoot            bool
	NDJSONMode               bool
	NormalizeSpecialLiterals bool
	PreserveNumberLexemes    bool
	MaxFixes                 int
}

// Default matches the façade's documented defaults.
func Default() Options {
	return Options{
		WrapMultiRoot:            true,
		NDJSONMode:               false,
		NormalizeSpecialLiterals: true,
		PreserveNumberLexemes:    true,
		MaxFixes:                 1000,
	}
}

package main

import (
	"os"

	"github.com/flosch/jsonrepair"
	"gopkg.in/yaml.v2"
)

// fileDefaults is the subset of jsonrepair.Config that can be supplied
// via an optional YAML defaults file. A positive -max-fixes, -ndjson
// and -no-wrap override the file's values; a flag left at its zero
// value does not.
type fileDefaults struct {
	WrapMultiRoot            *bool `yaml:"wrap_multi_root"`
	NDJSONMode               *bool `yaml:"ndjson_mode"`
	NormalizeSpecialLiterals *bool `yaml:"normalize_special_literals"`
	PreserveNumberLexemes    *bool `yaml:"preserve_number_lexemes"`
	MaxFixes                 *int  `yaml:"max_fixes"`
}

func loadFileDefaults(path string) (fileDefaults, error) {
	var fd fileDefaults
	if path == "" {
		return fd, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fd, err
	}
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return fd, err
	}
	return fd, nil
}

func (fd fileDefaults) apply(cfg jsonrepair.Config) jsonrepair.Config {
	if fd.WrapMultiRoot != nil {
		cfg.WrapMultiRoot = *fd.WrapMultiRoot
	}
	if fd.NDJSONMode != nil {
		cfg.NDJSONMode = *fd.NDJSONMode
	}
	if fd.NormalizeSpecialLiterals != nil {
		cfg.NormalizeSpecialLiterals = *fd.NormalizeSpecialLiterals
	}
	if fd.PreserveNumberLexemes != nil {
		cfg.PreserveNumberLexemes = *fd.PreserveNumberLexemes
	}
	if fd.MaxFixes != nil {
		cfg.MaxFixes = *fd.MaxFixes
	}
	return cfg
}

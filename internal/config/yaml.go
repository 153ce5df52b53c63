package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadManifestYAML loads a manifest from a single YAML file and validates
// it. The YAML schema mirrors the CUE one, with ensembles and presets as
// explicit lists:
//
//	ensembles:
//	  - caseUuid: "..."
//	    name: iter-0
//	    realizations: [0, 1, 2]
//	presets:
//	  - name: keep-three
//	    ensemble: "<caseUuid>::iter-0"
//	    tags: ["0-2"]
func LoadManifestYAML(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("manifest file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading manifest file: %v", err)}
	}

	return ParseManifestYAML(data)
}

// ParseManifestYAML parses manifest YAML bytes and validates the result.
func ParseManifestYAML(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("parsing manifest YAML: %v", err)}
	}

	if len(m.Ensembles) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: "no ensembles found in manifest"}
	}

	if err := m.Validate(); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: err.Error()}
	}
	return m, nil
}

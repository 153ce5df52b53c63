package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"
)

// Error code constants for manifest loading.
const (
	ErrCodeGeneric     = "M001" // Generic/unknown error
	ErrCodeNotFound    = "M002" // Path not found
	ErrCodeNoFiles     = "M003" // No manifest files found
	ErrCodeLoadFailed  = "M004" // CUE load failed
	ErrCodeBuildFailed = "M005" // CUE build failed
	ErrCodeEnsemble    = "M101" // Invalid ensemble entry
	ErrCodePreset      = "M102" // Invalid preset entry
	ErrCodeInvalid     = "M103" // Manifest failed semantic validation
)

// LoadError reports a manifest loading or compilation failure, positioned
// in the source file when CUE can tell us where.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadManifestCUE loads and compiles all CUE files in a directory into a
// manifest, then validates it.
func LoadManifestCUE(dir string) (*Manifest, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("manifest directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing manifest directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	return CompileManifest(value)
}

// CompileManifest parses a CUE value into a validated manifest.
//
// The value is expected to hold ensemble and preset structs keyed by name:
//
//	ensemble: "iter-0": {
//		caseUuid:     "..."
//		realizations: [0, 1, 2]
//	}
//	preset: "keep-three": {
//		ensemble: "<caseUuid>::iter-0"
//		tags:     ["0-2"]
//	}
func CompileManifest(v cue.Value) (*Manifest, error) {
	if err := v.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: err.Error(), Pos: v.Pos()}
	}

	m := &Manifest{}

	ensemblesVal := v.LookupPath(cue.ParsePath("ensemble"))
	if ensemblesVal.Exists() {
		iter, err := ensemblesVal.Fields()
		if err != nil {
			return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("iterating ensembles: %v", err), Pos: ensemblesVal.Pos()}
		}
		for iter.Next() {
			entry, err := compileEnsembleEntry(iter.Label(), iter.Value())
			if err != nil {
				return nil, err
			}
			m.Ensembles = append(m.Ensembles, *entry)
		}
	}

	presetsVal := v.LookupPath(cue.ParsePath("preset"))
	if presetsVal.Exists() {
		iter, err := presetsVal.Fields()
		if err != nil {
			return nil, &LoadError{Code: ErrCodePreset, Message: fmt.Sprintf("iterating presets: %v", err), Pos: presetsVal.Pos()}
		}
		for iter.Next() {
			entry, err := compilePresetEntry(iter.Label(), iter.Value())
			if err != nil {
				return nil, err
			}
			m.Presets = append(m.Presets, *entry)
		}
	}

	if len(m.Ensembles) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: "no ensembles found in manifest"}
	}

	if err := m.Validate(); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: err.Error()}
	}
	return m, nil
}

// compileEnsembleEntry parses one ensemble struct. The struct label is the
// ensemble name.
func compileEnsembleEntry(name string, v cue.Value) (*EnsembleEntry, error) {
	entry := &EnsembleEntry{Name: name}

	caseUUID, err := requiredString(v, "caseUuid", ErrCodeEnsemble)
	if err != nil {
		return nil, err
	}
	entry.CaseUUID = caseUUID

	entry.CaseName = optionalString(v, "caseName")
	entry.DisplayName = optionalString(v, "displayName")
	entry.Field = optionalString(v, "field")
	entry.StratigraphicColumn = optionalString(v, "stratigraphicColumn")
	entry.Color = optionalString(v, "color")

	realsVal := v.LookupPath(cue.ParsePath("realizations"))
	if !realsVal.Exists() {
		return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("ensemble %q: realizations is required", name), Pos: v.Pos()}
	}
	list, err := realsVal.List()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("ensemble %q: realizations must be a list: %v", name, err), Pos: realsVal.Pos()}
	}
	for list.Next() {
		n, err := list.Value().Int64()
		if err != nil {
			return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("ensemble %q: realization numbers must be integers: %v", name, err), Pos: list.Value().Pos()}
		}
		entry.Realizations = append(entry.Realizations, int(n))
	}

	paramsVal := v.LookupPath(cue.ParsePath("parameters"))
	if paramsVal.Exists() {
		iter, err := paramsVal.Fields()
		if err != nil {
			return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("ensemble %q: iterating parameters: %v", name, err), Pos: paramsVal.Pos()}
		}
		for iter.Next() {
			param, err := compileParameterEntry(name, iter.Label(), iter.Value())
			if err != nil {
				return nil, err
			}
			entry.Parameters = append(entry.Parameters, *param)
		}
	}

	return entry, nil
}

// compileParameterEntry parses one parameter struct. The struct label is
// the parameter ident; values is a realization-number-keyed struct of
// numbers (continuous) or strings (discrete).
func compileParameterEntry(ensembleName, ident string, v cue.Value) (*ParameterEntry, error) {
	param := &ParameterEntry{Ident: ident}

	discreteVal := v.LookupPath(cue.ParsePath("discrete"))
	if discreteVal.Exists() {
		discrete, err := discreteVal.Bool()
		if err != nil {
			return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("ensemble %q: parameter %q: discrete must be a bool: %v", ensembleName, ident, err), Pos: discreteVal.Pos()}
		}
		param.Discrete = discrete
	}

	valuesVal := v.LookupPath(cue.ParsePath("values"))
	if !valuesVal.Exists() {
		return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("ensemble %q: parameter %q: values is required", ensembleName, ident), Pos: v.Pos()}
	}
	iter, err := valuesVal.Fields()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("ensemble %q: parameter %q: iterating values: %v", ensembleName, ident, err), Pos: valuesVal.Pos()}
	}

	if param.Discrete {
		param.StringValues = map[int]string{}
	} else {
		param.NumericValues = map[int]float64{}
	}

	for iter.Next() {
		var realization int
		if _, err := fmt.Sscanf(iter.Label(), "%d", &realization); err != nil {
			return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("ensemble %q: parameter %q: value keys must be realization numbers: %q", ensembleName, ident, iter.Label()), Pos: iter.Value().Pos()}
		}

		if param.Discrete {
			s, err := iter.Value().String()
			if err != nil {
				return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("ensemble %q: discrete parameter %q: values must be strings: %v", ensembleName, ident, err), Pos: iter.Value().Pos()}
			}
			param.StringValues[realization] = s
		} else {
			f, err := iter.Value().Float64()
			if err != nil {
				return nil, &LoadError{Code: ErrCodeEnsemble, Message: fmt.Sprintf("ensemble %q: continuous parameter %q: values must be numbers: %v", ensembleName, ident, err), Pos: iter.Value().Pos()}
			}
			param.NumericValues[realization] = f
		}
	}

	return param, nil
}

// compilePresetEntry parses one preset struct. The struct label is the
// preset name.
func compilePresetEntry(name string, v cue.Value) (*PresetEntry, error) {
	entry := &PresetEntry{Name: name}

	ensembleIdent, err := requiredString(v, "ensemble", ErrCodePreset)
	if err != nil {
		return nil, err
	}
	entry.Ensemble = ensembleIdent

	entry.FilterType = optionalString(v, "filterType")
	entry.Mode = optionalString(v, "mode")

	tagsVal := v.LookupPath(cue.ParsePath("tags"))
	if tagsVal.Exists() {
		list, err := tagsVal.List()
		if err != nil {
			return nil, &LoadError{Code: ErrCodePreset, Message: fmt.Sprintf("preset %q: tags must be a list: %v", name, err), Pos: tagsVal.Pos()}
		}
		for list.Next() {
			tag, err := list.Value().String()
			if err != nil {
				return nil, &LoadError{Code: ErrCodePreset, Message: fmt.Sprintf("preset %q: tags must be strings: %v", name, err), Pos: list.Value().Pos()}
			}
			entry.Tags = append(entry.Tags, tag)
		}
	}

	return entry, nil
}

// requiredString reads a required string field, failing with a positioned
// LoadError when missing or mistyped.
func requiredString(v cue.Value, field, code string) (string, error) {
	fieldVal := v.LookupPath(cue.ParsePath(field))
	if !fieldVal.Exists() {
		return "", &LoadError{Code: code, Message: fmt.Sprintf("%s is required", field), Pos: v.Pos()}
	}
	s, err := fieldVal.String()
	if err != nil {
		return "", &LoadError{Code: code, Message: fmt.Sprintf("%s must be a string: %v", field, err), Pos: fieldVal.Pos()}
	}
	return s, nil
}

// optionalString reads an optional string field, returning "" when absent.
// A present-but-mistyped field also yields "" here; Validate catches the
// fields where that matters.
func optionalString(v cue.Value, field string) string {
	fieldVal := v.LookupPath(cue.ParsePath(field))
	if !fieldVal.Exists() {
		return ""
	}
	s, err := fieldVal.String()
	if err != nil {
		return ""
	}
	return s
}

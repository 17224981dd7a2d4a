// Package config discovers and loads build files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rmake/internal/adapters/rmakefile"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Candidates lists the build file names searched for, in priority order.
var Candidates = []string{"RMakefile", "rmake.yaml", "rmake.yml"}

var _ ports.BuildFileLoader = (*Loader)(nil)

// Loader implements ports.BuildFileLoader for the RMakefile and YAML formats.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Discover returns the path of the first candidate build file present in dir.
func (l *Loader) Discover(dir string) (string, error) {
	for _, name := range Candidates {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return "", zerr.With(zerr.Wrap(domain.ErrBuildFileReadFailed, err.Error()), "path", path)
		}
		if !info.IsDir() {
			return path, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrBuildFileNotFound, "cannot discover build file"), "dir", dir)
}

// Load parses the build file at path, choosing the format by extension.
func (l *Loader) Load(path string, env *domain.Environment) (*domain.BuildFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrBuildFileReadFailed, err.Error()), "path", path)
	}

	l.logger.Debug("loading build file " + path)

	var bf *domain.BuildFile
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		bf, err = loadYAML(path, data, env)
	default:
		bf, err = rmakefile.Parse(path, bytes.NewReader(data), env)
	}
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	for _, key := range env.Keys() {
		l.logger.Debug(fmt.Sprintf("assign %s = %s", key, env.Fetch(key, "")))
	}
	return bf, nil
}

func loadYAML(path string, data []byte, env *domain.Environment) (*domain.BuildFile, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(domain.ErrBuildFileParseFailed, err.Error())
	}

	if err := applyVars(&doc.Vars, env); err != nil {
		return nil, err
	}

	bf := domain.NewBuildFile(path)
	if err := addTargets(&doc.Targets, bf); err != nil {
		return nil, err
	}
	return bf, nil
}

func applyVars(node *yaml.Node, env *domain.Environment) error {
	if isAbsent(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return zerr.With(zerr.Wrap(domain.ErrInvalidEnvironmentTable, "vars must be a mapping"), "line", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Value == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidAssignment, "variable has no name"), "line", key.Line)
		}
		if value.Kind != yaml.ScalarNode {
			return zerr.With(zerr.Wrap(domain.ErrInvalidEnvironmentTable, "variable values must be scalars"), "line", value.Line)
		}
		env.Set(key.Value, scalar(value))
	}
	return nil
}

func addTargets(node *yaml.Node, bf *domain.BuildFile) error {
	if isAbsent(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return zerr.With(zerr.Wrap(domain.ErrBuildFileParseFailed, "targets must be a mapping"), "line", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var dto TargetDTO
		if !isAbsent(value) {
			if err := value.Decode(&dto); err != nil {
				return zerr.With(zerr.Wrap(domain.ErrBuildFileParseFailed, err.Error()), "line", value.Line)
			}
		}

		if err := bf.AddRule(key.Value, dto.Deps); err != nil {
			return zerr.With(zerr.Wrap(err, "cannot declare target"), "line", key.Line)
		}
		for _, cmd := range dto.Cmds {
			if err := bf.AddCommand(key.Value, cmd); err != nil {
				return err
			}
		}
	}
	return nil
}

// isAbsent reports whether a section was omitted or left empty.
func isAbsent(node *yaml.Node) bool {
	return node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

func scalar(node *yaml.Node) string {
	if node.Tag == "!!null" {
		return ""
	}
	return node.Value
}

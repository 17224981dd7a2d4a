package config

import "gopkg.in/yaml.v3"

// Document represents the structure of an rmake.yaml build file. Both sections
// are kept as nodes so that variables and targets retain document order.
type Document struct {
	Vars    yaml.Node `yaml:"vars"`
	Targets yaml.Node `yaml:"targets"`
}

// TargetDTO represents a target definition in the build file.
type TargetDTO struct {
	Deps []string `yaml:"deps"`
	Cmds []string `yaml:"cmds"`
}

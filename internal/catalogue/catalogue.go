package catalogue

import (
	_ "embed"
	"fmt"
	"slices"
	"strconv"

	"github.com/paani/remedial-learning-app/internal/errdefs"
	"gopkg.in/yaml.v2"
)

const (
	MinGrade = 1
	MaxGrade = 12
)

//go:embed competencies.yaml
var defaultCatalogue []byte

type Catalogue struct {
	Default []string            `yaml:"default"`
	Grades  map[string][]string `yaml:"grades"`
}

// Default returns the catalogue shipped with the binary.
func Default() *Catalogue {
	c, err := Parse(defaultCatalogue)
	if err != nil {
		panic(fmt.Sprintf("embedded competency catalogue: %v", err))
	}
	return c
}

func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	if len(c.Default) == 0 {
		return nil, fmt.Errorf("catalogue has no default competencies")
	}
	for grade := range c.Grades {
		if !ValidGrade(grade) {
			return nil, fmt.Errorf("catalogue lists unknown grade %q", grade)
		}
	}
	return &c, nil
}

func ValidGrade(grade string) bool {
	n, err := strconv.Atoi(grade)
	if err != nil || strconv.Itoa(n) != grade {
		return false
	}
	return n >= MinGrade && n <= MaxGrade
}

// Grades lists "1".."12".
func Grades() []string {
	out := make([]string, 0, MaxGrade-MinGrade+1)
	for g := MinGrade; g <= MaxGrade; g++ {
		out = append(out, strconv.Itoa(g))
	}
	return out
}

func (c *Catalogue) For(grade string) ([]string, error) {
	if !ValidGrade(grade) {
		return nil, fmt.Errorf("grade %q: %w", grade, errdefs.ErrValidation)
	}
	if list, ok := c.Grades[grade]; ok {
		return slices.Clone(list), nil
	}
	return slices.Clone(c.Default), nil
}

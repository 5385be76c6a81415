// Package subject defines the exam subject catalog. Each subject carries its
// topic taxonomy and the study modes it supports, so per-subject behavior is
// configuration rather than code.
package subject

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StudyMode identifies how a practice deck is assembled.
type StudyMode string

const (
	ModePractice       StudyMode = "practice"
	ModeReinforcement  StudyMode = "reinforcement"
	ModeTopic          StudyMode = "topic"
	ModeMixed          StudyMode = "mixed"
	ModeTimed          StudyMode = "timed"
	ModeCurrentAffairs StudyMode = "current-affairs"
	ModeReasoning      StudyMode = "reasoning"
)

// ErrUnknownSubject is returned when a name does not match any catalog entry.
var ErrUnknownSubject = errors.New("unknown subject")

// Subject describes one exam category and its question bank.
type Subject struct {
	Name   string      `yaml:"name"`
	Prefix string      `yaml:"prefix"`
	Topics []string    `yaml:"topics"`
	Modes  []StudyMode `yaml:"modes"`
}

// HasMode reports whether the subject supports the given study mode.
func (s Subject) HasMode(mode StudyMode) bool {
	for _, m := range s.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// DefaultCatalog returns the built-in subjects.
func DefaultCatalog() []Subject {
	return []Subject{
		{
			Name:   "Assistant Registrar",
			Prefix: "ar",
			Topics: []string{"Administration", "Office Procedures", "Records Management", "Communication", "General"},
			Modes:  []StudyMode{ModePractice, ModeReinforcement, ModeTopic},
		},
		{
			Name:   "Admin Officer",
			Prefix: "ao",
			Topics: []string{"Management", "Public Administration", "Finance", "Law", "General"},
			Modes:  []StudyMode{ModePractice, ModeReinforcement, ModeTopic},
		},
		{
			Name:   "General Awareness and Current Affairs",
			Prefix: "ga",
			Topics: []string{"History", "Geography", "Polity", "Economy", "Science", "Current Affairs", "General"},
			Modes:  []StudyMode{ModePractice, ModeReinforcement, ModeTopic, ModeCurrentAffairs, ModeMixed},
		},
		{
			Name:   "Quantitative Aptitudes and Reasoning",
			Prefix: "qa",
			Topics: []string{"Arithmetic", "Algebra", "Geometry", "Data Interpretation", "Logical Reasoning", "General"},
			Modes:  []StudyMode{ModePractice, ModeReinforcement, ModeTopic, ModeTimed, ModeReasoning},
		},
	}
}

// LoadCatalog reads extra subjects from a YAML file and appends them to the
// default catalog. Entries whose name matches a default subject replace it.
func LoadCatalog(path string) ([]Subject, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var extra []Subject
	if err := yaml.Unmarshal(contents, &extra); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}

	catalog := DefaultCatalog()
	for _, sub := range extra {
		replaced := false
		for i := range catalog {
			if catalog[i].Name == sub.Name {
				catalog[i] = sub
				replaced = true
				break
			}
		}
		if !replaced {
			catalog = append(catalog, sub)
		}
	}
	return catalog, nil
}

// Find returns the subject with the given name.
func Find(catalog []Subject, name string) (Subject, error) {
	for _, sub := range catalog {
		if sub.Name == name {
			return sub, nil
		}
	}
	return Subject{}, fmt.Errorf("%w: %q", ErrUnknownSubject, name)
}

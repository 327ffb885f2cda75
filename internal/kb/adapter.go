// File path: internal/kb/adapter.go
package kb

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RawSection is the document shape persisted by the section store. The top
// level uses section_name/sub_sections while nested levels use
// sub_section_name; FromRaw folds both spellings into the unified Section
// shape so the inconsistency never leaks past this boundary.
type RawSection struct {
	SectionName    string       `json:"section_name,omitempty"`
	SubSectionName string       `json:"sub_section_name,omitempty"`
	Questions      []QAPair     `json:"questions,omitempty"`
	SubSections    []RawSection `json:"sub_sections,omitempty"`
}

// FromRaw converts a stored document into the unified tree shape.
func FromRaw(raw RawSection) Section {
	return fromRaw(raw, 0)
}

func fromRaw(raw RawSection, depth int) Section {
	name := strings.TrimSpace(raw.SectionName)
	if name == "" {
		name = strings.TrimSpace(raw.SubSectionName)
	}
	section := Section{Name: name}
	if len(raw.Questions) > 0 {
		section.Questions = append([]QAPair(nil), raw.Questions...)
	}
	if depth >= MaxDepth {
		return section
	}
	for _, sub := range raw.SubSections {
		section.Children = append(section.Children, fromRaw(sub, depth+1))
	}
	return section
}

// ToRaw converts a unified section back into the persisted document shape.
// The root level keeps section_name; every nested level uses sub_section_name.
func ToRaw(section Section) RawSection {
	raw := RawSection{SectionName: section.Name, Questions: section.Questions}
	for _, child := range section.Children {
		raw.SubSections = append(raw.SubSections, toRawChild(child, 1))
	}
	return raw
}

func toRawChild(section Section, depth int) RawSection {
	raw := RawSection{SubSectionName: section.Name, Questions: section.Questions}
	if depth >= MaxDepth {
		return raw
	}
	for _, child := range section.Children {
		raw.SubSections = append(raw.SubSections, toRawChild(child, depth+1))
	}
	return raw
}

// DecodeRaw parses a single stored document and normalizes it.
func DecodeRaw(data []byte) (Section, error) {
	var raw RawSection
	if err := json.Unmarshal(data, &raw); err != nil {
		return Section{}, fmt.Errorf("decode section document: %w", err)
	}
	section := FromRaw(raw)
	if section.Name == "" {
		return Section{}, fmt.Errorf("section document missing name")
	}
	return section, nil
}

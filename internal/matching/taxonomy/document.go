package taxonomy

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// EntrySpec is the serialized form of an Entry.
type EntrySpec struct {
	Term       string   `yaml:"term" json:"term"`
	Variations []string `yaml:"variations,omitempty" json:"variations"`
}

// Document is the file/wire shape of a taxonomy. Sections are listed in
// precedence order.
type Document struct {
	Hard       []EntrySpec `yaml:"hard" json:"hard"`
	Soft       []EntrySpec `yaml:"soft" json:"soft"`
	Experience []EntrySpec `yaml:"experience" json:"experience"`
	Education  []EntrySpec `yaml:"education" json:"education"`
}

func (d Document) section(cat Category) []EntrySpec {
	switch cat {
	case Hard:
		return d.Hard
	case Soft:
		return d.Soft
	case Experience:
		return d.Experience
	case Education:
		return d.Education
	default:
		return nil
	}
}

func (d *Document) setSection(cat Category, specs []EntrySpec) {
	switch cat {
	case Hard:
		d.Hard = specs
	case Soft:
		d.Soft = specs
	case Experience:
		d.Experience = specs
	case Education:
		d.Education = specs
	}
}

// ParseYAML decodes and validates a YAML taxonomy document.
func ParseYAML(data []byte) (*Taxonomy, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalid, err)
	}
	return Build(doc)
}

// EncodeYAML renders the taxonomy as a YAML document.
func (t *Taxonomy) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(t.Document())
}

// SPDX-License-Identifier: MIT
package dynsys

// yamlDocument is the serialized form of a moment system.
type yamlDocument struct {
	States       []yamlEntry `yaml:"states"`
	Disturbances []string    `yaml:"disturbances"`
	Controls     []string    `yaml:"controls"`
}

type yamlEntry struct {
	Moment string `yaml:"moment"`
	Update string `yaml:"update"`
}

// MarshalYAML implements yaml.Marshaler. Updates are rendered in plain
// syntax; order follows insertion order.
func (s *MomentStateDynamicalSystem) MarshalYAML() (interface{}, error) {
	doc := yamlDocument{
		States:       make([]yamlEntry, 0, len(s.entries)),
		Disturbances: make([]string, 0, len(s.disturbances)),
		Controls:     make([]string, 0, len(s.controls)),
	}
	for _, e := range s.entries {
		doc.States = append(doc.States, yamlEntry{Moment: e.Moment.Name(), Update: e.Update.String()})
	}
	for _, m := range s.disturbances {
		doc.Disturbances = append(doc.Disturbances, m.Name())
	}
	for _, v := range s.controls {
		doc.Controls = append(doc.Controls, v.Name())
	}

	return doc, nil
}

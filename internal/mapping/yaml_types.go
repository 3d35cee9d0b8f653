package mapping

// CurrentVersion is written by Marshal and assumed when a file omits it.
const CurrentVersion = "1"

// OverrideFile is the YAML form of pinned overrides.
type OverrideFile struct {
	Version          string            `yaml:"version"`
	Variable         string            `yaml:"variable,omitempty"`
	DimensionMapping map[string]string `yaml:"dimension_mapping"`
}

// Override returns the pinned pairs as an Override.
func (f *OverrideFile) Override() Override {
	return Mapping(f.DimensionMapping).Clone()
}

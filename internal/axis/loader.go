package axis

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML dataset description from the given path.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Dataset.
func Parse(data []byte) (*Dataset, error) {
	var df DatasetFile

	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse dataset YAML: %w", err)
	}

	return df.Build()
}

// Build converts the file description into a Dataset.
func (df *DatasetFile) Build() (*Dataset, error) {
	ds := &Dataset{Axes: make([]Axis, 0, len(df.Axes))}
	seen := make(map[string]struct{}, len(df.Axes))

	for i := range df.Axes {
		def := &df.Axes[i]

		if def.Name == "" {
			return nil, fmt.Errorf("axis #%d: name is required", i)
		}

		if _, ok := seen[def.Name]; ok {
			return nil, fmt.Errorf("axis %q: duplicate axis name", def.Name)
		}

		seen[def.Name] = struct{}{}

		a, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("axis %q: %w", def.Name, err)
		}

		ds.Axes = append(ds.Axes, a)
	}

	return ds, nil
}

func (def *AxisDef) build() (Axis, error) {
	sources := 0
	if len(def.Values) > 0 {
		sources++
	}

	if def.Range != nil {
		sources++
	}

	if len(def.Times) > 0 {
		sources++
	}

	if sources > 1 {
		return Axis{}, errors.New("values, range and times are mutually exclusive")
	}

	a := Axis{
		Name:   def.Name,
		Values: def.Values,
		Times:  def.Times,
		Attrs:  def.Attrs,
	}

	if def.Range != nil {
		if def.Range.Count <= 0 {
			return Axis{}, fmt.Errorf("range count must be positive, got %d", def.Range.Count)
		}

		a.Values = def.Range.Expand()
	}

	return a, nil
}

// Marshal serializes a Dataset to YAML. Values are written out explicitly.
func Marshal(ds *Dataset) ([]byte, error) {
	df := DatasetFile{Axes: make([]AxisDef, 0, ds.Len())}
	for i := 0; i < ds.Len(); i++ {
		a := &ds.Axes[i]
		df.Axes = append(df.Axes, AxisDef{
			Name:   a.Name,
			Attrs:  a.Attrs,
			Values: a.Values,
			Times:  a.Times,
		})
	}

	return yaml.Marshal(&df)
}

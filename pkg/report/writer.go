package report

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/usagereport-project/usagereport/pkg/model"
)

const reportFilePerm = 0644

// Summary is the serializable form of a timeline: the overall span plus one
// record per child with all of its fields.
type Summary struct {
	model.TimedInterval `yaml:",inline"`

	Children []model.ResourceUsage `yaml:"children"`
}

// ToYAML renders the summary as a YAML document.
func (s Summary) ToYAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile renders the summary and writes it to the named file.
func (s Summary) WriteFile(filename string) error {
	data, err := s.ToYAML()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, reportFilePerm)
}

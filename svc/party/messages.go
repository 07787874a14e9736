package party

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Messages is the catalog of user-facing texts. {min} expands to the minimum
// number of participants and {name} to the drawn friend.
type Messages struct {
	EmptyField  string `yaml:"empty_field"`
	Duplicate   string `yaml:"duplicate"`
	EmptyRoster string `yaml:"empty_roster"`
	NotEnough   string `yaml:"not_enough"`
	Result      string `yaml:"result"`
}

// DefaultMessages returns the built-in English catalog.
func DefaultMessages() Messages {
	return Messages{
		EmptyField:  "Please enter a valid name.",
		Duplicate:   "This name is already on the list.",
		EmptyRoster: "The list is empty. Add at least {min} friends.",
		NotEnough:   "Add at least {min} friends to draw.",
		Result:      "🎉 Your secret friend is: {name}!",
	}
}

// LoadMessages reads a YAML catalog from path. Keys missing from the file
// keep their default text. An empty path returns the defaults.
func LoadMessages(path string) (Messages, error) {
	msgs := DefaultMessages()
	if path == "" {
		return msgs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return msgs, errors.Join(ErrLoadMessages, err)
	}
	return ParseMessages(data)
}

// ParseMessages decodes a YAML catalog over the defaults.
func ParseMessages(data []byte) (Messages, error) {
	msgs := DefaultMessages()
	var override Messages
	if err := yaml.Unmarshal(data, &override); err != nil {
		return msgs, errors.Join(ErrLoadMessages, err)
	}
	msgs.merge(override)
	return msgs, nil
}

func (m *Messages) merge(o Messages) {
	for dst, src := range map[*string]string{
		&m.EmptyField:  o.EmptyField,
		&m.Duplicate:   o.Duplicate,
		&m.EmptyRoster: o.EmptyRoster,
		&m.NotEnough:   o.NotEnough,
		&m.Result:      o.Result,
	} {
		if strings.TrimSpace(src) != "" {
			*dst = src
		}
	}
}

func (m Messages) emptyRoster(min int) string {
	return strings.ReplaceAll(m.EmptyRoster, "{min}", strconv.Itoa(min))
}

func (m Messages) notEnough(min int) string {
	return strings.ReplaceAll(m.NotEnough, "{min}", strconv.Itoa(min))
}

func (m Messages) result(name string) string {
	return strings.ReplaceAll(m.Result, "{name}", name)
}

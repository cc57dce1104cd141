package keypad

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// unbindAction removes a default binding in a keymap file.
const unbindAction = "none"

type keymapFile struct {
	Bindings map[string]string `yaml:"bindings"`
}

// LoadKeymap reads a YAML keymap file and merges it over the default bindings:
//
//	bindings:
//	  x: multiply
//	  Escape: clear
//	  F9: none
func LoadKeymap(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}

	km, err := ParseKeymap(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return km, nil
}

// ParseKeymap merges YAML bindings over the default keymap.
func ParseKeymap(data []byte) (*Keymap, error) {
	var file keymapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	km := DefaultKeymap()
	for key, action := range file.Bindings {
		if key == "" {
			return nil, ErrEmptyKeyName
		}
		if action == unbindAction {
			km.Unbind(key)
			continue
		}
		b, err := ParseAction(action)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		km.Bind(key, b)
	}
	return km, nil
}

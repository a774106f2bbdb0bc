package files

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/apex/log"
	yaml "gopkg.in/yaml.v2"
)

// ReadJSON reads and unmarshals a JSON file.
func ReadJSON(v interface{}, path string) error {
	return ReadUnmarshal(v, path, json.Unmarshal)
}

// ReadTOML reads and unmarshals a TOML file.
func ReadTOML(v interface{}, path string) error {
	return ReadUnmarshal(v, path, toml.Unmarshal)
}

// ReadYAML reads and unmarshals a YAML file.
func ReadYAML(v interface{}, path string) error {
	return ReadUnmarshal(v, path, yaml.Unmarshal)
}

type UnmarshalFunc func(data []byte, v interface{}) error

// ReadUnmarshal reads a file and parses it with the given UnmarshalFunc.
func ReadUnmarshal(v interface{}, path string, unmarshal UnmarshalFunc) error {
	contents, err := Read(path)
	if err != nil {
		return err
	}
	err = unmarshal(contents, v)
	if err != nil {
		log.Debugf("could not parse file `%s`: %s", path, err.Error())
	}
	return err
}

package buildenv

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/fileutils"
	"github.com/ActiveState/pylink/internal/logging"
	"github.com/ActiveState/pylink/internal/output"
)

// MarshalYAML writes the environment as a mapping, keeping key order
func (e *Environment) MarshalYAML() (interface{}, error) {
	ms := yaml.MapSlice{}
	for _, k := range e.keys {
		v := e.values[k]
		if v.isList {
			ms = append(ms, yaml.MapItem{Key: k, Value: append([]string{}, v.list...)})
			continue
		}
		ms = append(ms, yaml.MapItem{Key: k, Value: v.scalar})
	}
	return ms, nil
}

// UnmarshalYAML reads a mapping of keys to scalars or sequences. Scalars of any YAML type are read as strings.
func (e *Environment) UnmarshalYAML(unmarshal func(interface{}) error) error {
	ms := yaml.MapSlice{}
	if err := unmarshal(&ms); err != nil {
		return err
	}

	if e.values == nil {
		e.values = map[string]*value{}
	}

	for _, item := range ms {
		key, err := cast.ToStringE(item.Key)
		if err != nil {
			return errs.Wrap(err, "Invalid key: %v", item.Key)
		}

		switch val := item.Value.(type) {
		case []interface{}:
			list, err := cast.ToStringSliceE(val)
			if err != nil {
				return errs.Wrap(err, "Invalid sequence for %s", key)
			}
			e.SetList(key, list)
		case nil:
			e.Set(key, "")
		default:
			s, err := cast.ToStringE(val)
			if err != nil {
				return errs.Wrap(err, "Invalid value for %s", key)
			}
			e.Set(key, s)
		}
	}
	return nil
}

// MarshalJSON writes the environment as an object, keeping key order
func (e *Environment) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		var vb []byte
		if v := e.values[k]; v.isList {
			vb, err = json.Marshal(v.list)
		} else {
			vb, err = json.Marshal(v.scalar)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the environment as YAML
func (e *Environment) String() string {
	b, err := yaml.Marshal(e)
	if err != nil {
		logging.Error("Could not marshal environment: %v", err)
		return ""
	}
	return string(bytes.TrimRight(b, "\n"))
}

// MarshalOutput hands the environment itself to JSON and its YAML rendering to plain output
func (e *Environment) MarshalOutput(f output.Format) interface{} {
	if f == output.JSONFormatName {
		return e
	}
	return e.String()
}

// Load reads an environment from a YAML file
func Load(path string) (*Environment, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "Could not read environment file")
	}

	env := New()
	if err := yaml.Unmarshal(data, env); err != nil {
		return nil, errs.Wrap(err, "Could not parse environment file: %s", path)
	}
	return env, nil
}

// Save writes the environment to a YAML file
func (e *Environment) Save(path string) error {
	data, err := yaml.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "Could not marshal environment")
	}
	if err := fileutils.WriteFile(path, data); err != nil {
		return errs.Wrap(err, "Could not write environment file")
	}
	return nil
}

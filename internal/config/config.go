// Package config loads the release configuration for the working directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/chunkah/relcut/internal/validator"
)

// ConfigFile is the name of the optional per-project configuration file.
const ConfigFile = ".relcut.yml"

// DefaultConfigContent is written by `relcut init`. Every field is optional;
// omitted fields keep the defaults shown here.
const DefaultConfigContent = `# relcut release configuration

# Name stem for the release tarballs:
#   <project>-<version>.tar.gz and <project>-<version>-vendor.tar.gz
project: chunkah

# The release tag is tagPrefix + version (e.g. v1.2.3).
tagPrefix: v

# Remote the tag is pushed to.
remote: origin

# Aggregate check command that must pass before anything else happens.
checkCommand: [just, checkall]

# Target platform pattern passed to cargo vendor-filterer.
vendorPlatform: "*-unknown-linux-*"
`

// configSchema validates the shape of the configuration file. Fields may be
// omitted, but a field that is present must not be empty.
const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "project": {"type": "string", "minLength": 1},
    "tagPrefix": {"type": "string", "minLength": 1},
    "remote": {"type": "string", "minLength": 1},
    "checkCommand": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    },
    "vendorPlatform": {"type": "string", "minLength": 1}
  }
}`

const schemaID = "relcut://config-schema"

// Config describes the release shape of the project being cut.
type Config struct {
	Project        string   `yaml:"project"`
	TagPrefix      string   `yaml:"tagPrefix"`
	Remote         string   `yaml:"remote"`
	CheckCommand   []string `yaml:"checkCommand"`
	VendorPlatform string   `yaml:"vendorPlatform"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Project:        "chunkah",
		TagPrefix:      "v",
		Remote:         "origin",
		CheckCommand:   []string{"just", "checkall"},
		VendorPlatform: "*-unknown-linux-*",
	}
}

// Load reads and validates the configuration file in dir. A missing file is
// not an error; the defaults apply.
func Load(dir string, compiler validator.Compiler) (*Config, error) {
	path := filepath.Join(dir, ConfigFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	// Decode once into a generic document for schema validation, then into
	// the typed struct.
	var doc interface{}
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidYAMLError{Wrapped: err}
	}

	if err = validate(compiler, doc); err != nil {
		return nil, err
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, &InvalidYAMLError{Wrapped: err}
	}
	return cfg, nil
}

func validate(compiler validator.Compiler, doc interface{}) error {
	var schemaDoc interface{}
	if err := json.Unmarshal([]byte(configSchema), &schemaDoc); err != nil {
		return fmt.Errorf("failed to parse config schema: %w", err)
	}
	if err := compiler.AddSchema(schemaID, schemaDoc); err != nil {
		return fmt.Errorf("failed to register config schema: %w", err)
	}

	v, err := compiler.Compile(schemaID)
	if err != nil {
		return fmt.Errorf("failed to compile config schema: %w", err)
	}

	if err = v.Validate(doc); err != nil {
		return &InvalidConfigError{Wrapped: err}
	}
	return nil
}

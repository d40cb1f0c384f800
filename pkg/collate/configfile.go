// File: pkg/collate/configfile.go
package collate

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is probed in the working directory when --config is not
// given.
const DefaultConfigFile = ".collate.yaml"

// FileConfig mirrors Config with optional fields, so keys absent from the
// YAML leave the corresponding defaults untouched.
type FileConfig struct {
	Root          *string  `yaml:"root"`
	Output        *string  `yaml:"output"`
	MaxFileSizeKB *int     `yaml:"max_kb"`
	IncludeHidden *bool    `yaml:"include_hidden"`
	ExtraDirs     []string `yaml:"extra_dirs"`
	OnlyExts      []string `yaml:"only_exts"`
	IgnoreFile    *string  `yaml:"ignore_file"`
	Tree          *bool    `yaml:"tree"`
}

// LoadConfigFile reads a YAML config file. When the path was only probed
// rather than requested (explicit false), a missing file yields the zero
// FileConfig and no error.
func LoadConfigFile(path string, explicit bool) (FileConfig, error) {
	var fc FileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return fc, nil
		}
		return fc, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Apply overlays the file's values onto c. Unset keys change nothing.
func (fc FileConfig) Apply(c *Config) {
	if fc.Root != nil {
		c.Root = *fc.Root
	}
	if fc.Output != nil {
		c.Output = *fc.Output
	}
	if fc.MaxFileSizeKB != nil {
		c.MaxFileSizeKB = *fc.MaxFileSizeKB
	}
	if fc.IncludeHidden != nil {
		c.IncludeHidden = *fc.IncludeHidden
	}
	if fc.ExtraDirs != nil {
		c.ExtraDirs = fc.ExtraDirs
	}
	if fc.OnlyExts != nil {
		c.OnlyExts = fc.OnlyExts
	}
	if fc.IgnoreFile != nil {
		c.IgnoreFile = *fc.IgnoreFile
	}
	if fc.Tree != nil {
		c.Tree = *fc.Tree
	}
}

// ApplyEnv overlays COLLATE_* environment variables onto c. Values that do
// not parse are ignored rather than fatal. Callers wanting .env support load
// godotenv before this runs.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("COLLATE_ROOT")); v != "" {
		c.Root = v
	}
	if v := strings.TrimSpace(os.Getenv("COLLATE_OUTPUT")); v != "" {
		c.Output = v
	}
	if v := strings.TrimSpace(os.Getenv("COLLATE_MAX_KB")); v != "" {
		if kb, err := strconv.Atoi(v); err == nil {
			c.MaxFileSizeKB = kb
		}
	}
	if v := strings.TrimSpace(os.Getenv("COLLATE_INCLUDE_HIDDEN")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.IncludeHidden = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("COLLATE_EXTRA_DIRS")); v != "" {
		c.ExtraDirs = splitList(v)
	}
	if v := strings.TrimSpace(os.Getenv("COLLATE_ONLY_EXTS")); v != "" {
		c.OnlyExts = splitList(v)
	}
	if v := strings.TrimSpace(os.Getenv("COLLATE_GLOBAL_IGNORE")); v != "" {
		c.IgnoreFile = v
	}
}

// splitList parses a comma-separated environment value into trimmed,
// non-empty items.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package cargo

import (
	"github.com/BurntSushi/toml"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigParser = (*ConfigParser)(nil)

// ConfigParser decodes generic TOML assets. These are accepted by the
// pipeline but trigger no build; the host just gets the parsed document.
type ConfigParser struct{}

// NewConfigParser creates a new ConfigParser.
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// Parse decodes the TOML document at path into a generic map.
func (p *ConfigParser) Parse(path string) (map[string]any, error) {
	doc := make(map[string]any)
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse TOML asset"), "path", path)
	}
	return doc, nil
}

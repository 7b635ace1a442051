package config

import (
	"bytes"

	"github.com/arthur-debert/frece/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# frece configuration
# Save as $XDG_CONFIG_HOME/frece/config.toml. Environment variables
# FRECE_<SECTION>_<KEY> override these values.

`

// Generate renders cfg as a TOML configuration file.
func Generate(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := gotoml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

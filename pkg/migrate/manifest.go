package migrate

import (
	"io"

	"gopkg.in/yaml.v2"

	"github.com/ic2bedrock/texmigrate/pkg/errors"
)

var (
	// ErrManifest reports an unreadable mapping manifest.
	ErrManifest = errors.New("reading mapping manifest")
	// ErrManifestEntry reports a manifest entry without a source or destination.
	ErrManifestEntry = errors.New("manifest entry needs both source and destination")
)

// LoadManifest reads additional mapping entries from a YAML document of the
// form:
//
//	- source: blocks/resource/silver_ore.png
//	  destination: blocks/ore/silver_ore.png
//	  label: ore
//
// Entries keep their document order, so manifests may fan a source out to
// several destinations just like the compiled-in tables.
func LoadManifest(r io.Reader) ([]Entry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrManifest.Wrap(err)
	}
	var entries []Entry
	if err = yaml.Unmarshal(raw, &entries); err != nil {
		return nil, ErrManifest.Wrap(err)
	}
	for _, e := range entries {
		if e.Source == "" || e.Destination == "" {
			return nil, ErrManifestEntry
		}
	}
	return entries, nil
}

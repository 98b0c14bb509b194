package translation

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"brokerdocs/internal/services"
)

//go:embed locales/*.toml
var embedded embed.FS

// ErrLanguageFileNotFound reports that no translation file exists for a language.
var ErrLanguageFileNotFound = errors.New("language file not found")

var extensions = []string{".toml", ".yaml", ".yml"}

// Load reads the translation file for lang. When dir is empty the files
// built into the binary are used; otherwise dir must contain <lang>.toml,
// <lang>.yaml or <lang>.yml.
func Load(lang, dir string) (*Dictionary, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return nil, services.Wrap(services.ErrConfiguration, "translation", "load", "language must be set", nil)
	}

	var (
		fsys   fs.FS
		origin string
	)
	if dir == "" {
		fsys, _ = fs.Sub(embedded, "locales")
		origin = "builtin"
	} else {
		fsys = os.DirFS(dir)
		origin = dir
	}

	for _, ext := range extensions {
		name := lang + ext
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "translation", "read", name, err)
		}
		raw, err := decode(name, data)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "translation", "decode", name, err)
		}
		dict, err := Parse(lang, raw)
		if err != nil {
			return nil, err
		}
		dict.Source = filepath.Join(origin, name)
		return dict, nil
	}

	return nil, services.Wrap(services.ErrConfiguration, "translation", "load",
		fmt.Sprintf("no %s translation in %s", lang, origin), ErrLanguageFileNotFound)
}

func decode(name string, data []byte) (map[string]any, error) {
	raw := map[string]any{}
	switch filepath.Ext(name) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

package messages

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes catalog YAML where top-level keys are language tags over
// nested message trees:
//
//	en:
//	  semantic-attributes:
//	    errors:
//	      messages:
//	        blank: "can't be blank"
func ParseYAML(data []byte) (map[string]Catalog, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	out := make(map[string]Catalog, len(root))
	for lang, val := range root {
		m, ok := nested(val)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected a mapping, got %T", ErrInvalidCatalogStructure, lang, val)
		}
		out[lang] = Catalog(m)
	}
	if len(out) == 0 {
		return nil, ErrNoCatalogs
	}
	return out, nil
}

// LoadYAML parses data with ParseYAML and merges every language catalog it
// carries.
func (r *Resolver) LoadYAML(data []byte) error {
	cats, err := ParseYAML(data)
	if err != nil {
		return err
	}
	for lang, c := range cats {
		r.Add(lang, c)
	}
	return nil
}

// LoadFS loads every .yml and .yaml file found under root in fsys, walking
// subdirectories. Works with embed.FS for catalogs compiled into the binary.
func (r *Resolver) LoadFS(fsys fs.FS, root string) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(p))
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return errors.Join(ErrFailedToReadFile, err)
		}
		if err := r.LoadYAML(data); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		return nil
	})
}

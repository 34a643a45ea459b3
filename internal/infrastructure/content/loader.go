// Package content loads translation units from a directory tree.
//
// Two layouts are accepted and may be mixed:
//
//	<namespace>/<locale>.<ext>   one file per locale, namespace may be nested (fullstack/hero/pt.json)
//	<namespace>.json             flat file keyed by locale: {"en": {...}, "pt": {...}}
//
// Supported extensions are json, yaml, yml and toml.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"portfolio/internal/domain/locale"
	"portfolio/internal/ports/output"
)

var _ output.StoreLoader = (*Loader)(nil)

type decodeFunc func(data []byte, v any) error

var decoders = map[string]decodeFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// Loader reads a translation store from a filesystem.
type Loader struct {
	fsys fs.FS
	set  *locale.Set
	log  *slog.Logger
}

// NewLoader creates a Loader rooted at fsys. Files for locales that are not
// part of set are skipped.
func NewLoader(fsys fs.FS, set *locale.Set, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{fsys: fsys, set: set, log: log}
}

// Load walks the tree in lexical order and builds the store.
func (l *Loader) Load(ctx context.Context) (*locale.Store, error) {
	b := locale.NewBuilder()
	files := 0

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		decode, ok := decoders[ext]
		if !ok {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return fmt.Errorf("read content %s: %w", p, err)
		}
		var payload any
		if err := decode(data, &payload); err != nil {
			return fmt.Errorf("decode content %s: %w", p, err)
		}
		files++

		dir := path.Dir(p)
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if dir == "." {
			return l.addFlat(b, name, p, payload)
		}
		return l.addLocaleFile(b, dir, locale.Tag(name), p, payload)
	})
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	store := b.Build(l.set)
	l.log.InfoContext(ctx, "content loaded",
		"files", files,
		"namespaces", store.Len())
	return store, nil
}

func (l *Loader) addLocaleFile(b *locale.Builder, namespace string, tag locale.Tag, p string, payload any) error {
	if !l.set.Contains(tag) {
		l.log.Warn("skipping content for unconfigured locale", "file", p, "locale", tag)
		return nil
	}
	if err := b.Add(namespace, tag, payload); err != nil {
		return fmt.Errorf("content %s: %w", p, err)
	}
	return nil
}

func (l *Loader) addFlat(b *locale.Builder, namespace, p string, payload any) error {
	byLocale, ok := payload.(map[string]any)
	if !ok {
		return fmt.Errorf("content %s: flat file must map locales to content, got %T", p, payload)
	}
	for key, v := range byLocale {
		tag := locale.Tag(key)
		if !l.set.Contains(tag) {
			l.log.Warn("skipping content for unconfigured locale", "file", p, "locale", tag)
			continue
		}
		if err := b.Add(namespace, tag, v); err != nil {
			return fmt.Errorf("content %s: %w", p, err)
		}
	}
	return nil
}

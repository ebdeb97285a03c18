// Package load reads declaration descriptors produced by a front end.
//
// A descriptor file is a Document in one of the supported encodings,
// selected by file extension:
//
//	.yaml, .yml      YAML
//	.json            JSON
//	.toml            TOML
//	.cue             CUE (must evaluate to concrete data)
//	.msgpack, .mpk   MessagePack
package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a descriptor file.
type Format string

// Supported descriptor encodings.
const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatTOML    Format = "toml"
	FormatCUE     Format = "cue"
	FormatMsgpack Format = "msgpack"
)

// ErrEmptyEntry is returned for documents holding a null list entry.
var ErrEmptyEntry = errors.New("load: null descriptor entry")

// ErrUnknownFormat is returned for files whose extension is not a descriptor format.
var ErrUnknownFormat = errors.New("load: unknown descriptor format")

var extensions = map[string]Format{
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".json":    FormatJSON,
	".toml":    FormatTOML,
	".cue":     FormatCUE,
	".msgpack": FormatMsgpack,
	".mpk":     FormatMsgpack,
}

// FormatOf returns the descriptor format of the given file name.
func FormatOf(name string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(name))]
	return f, ok
}

// LoadFile loads the descriptor document stored at path.
func LoadFile(path string) (*Document, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read %s: %w", path, err)
	}
	return Decode(format, data, path)
}

// LoadPaths loads every descriptor found in paths. Directories are read
// non-recursively in name order and files with other extensions are skipped.
// Explicit file paths must have a known extension.
func LoadPaths(paths ...string) ([]*Document, error) {
	var docs []*Document
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		if !info.IsDir() {
			doc, err := LoadFile(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("load: read dir %s: %w", path, err)
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if _, ok := FormatOf(e.Name()); ok && !e.IsDir() {
				names = append(names, e.Name())
			}
		}
		slices.Sort(names)
		for _, name := range names {
			doc, err := LoadFile(filepath.Join(path, name))
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Decode decodes a descriptor document from data. The source name is
// recorded on the document and on each of its declarations.
func Decode(format Format, data []byte, source string) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, doc)
	case FormatJSON:
		err = json.Unmarshal(data, doc)
	case FormatTOML:
		_, err = toml.Decode(string(data), doc)
	case FormatCUE:
		err = decodeCUE(data, source, doc)
	case FormatMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		err = dec.Decode(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("load: decode %s %s: %w", format, source, err)
	}
	if at := doc.EmptyEntry(); at != "" {
		return nil, fmt.Errorf("%w: %s: %s", ErrEmptyEntry, source, at)
	}
	doc.init(source)
	return doc, nil
}

func decodeCUE(data []byte, source string, doc *Document) error {
	v := cuecontext.New().CompileBytes(data, cue.Filename(source))
	if err := v.Err(); err != nil {
		return err
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return v.Decode(doc)
}

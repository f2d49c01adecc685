package config

import (
	"context"
	_ "embed"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/jmgilman/go/ftpfs/errors"
	"github.com/jmgilman/go/ftpfs/fs/core"
)

//go:embed schema.cue
var schemaSource []byte

// Loader reads user configurations from a filesystem.
// It owns a CUE context; a Loader is not safe for concurrent use.
type Loader struct {
	fs     core.ReadFS
	cueCtx *cue.Context
}

// NewLoader creates a Loader reading from filesystem.
func NewLoader(filesystem core.ReadFS) *Loader {
	return &Loader{
		fs:     filesystem,
		cueCtx: cuecontext.New(),
	}
}

// Load reads the configuration at path from fsys.
// It is shorthand for NewLoader(fsys).Load(ctx, path).
func Load(ctx context.Context, fsys core.ReadFS, path string) (*Config, error) {
	return NewLoader(fsys).Load(ctx, path)
}

// Load reads, validates and decodes the configuration at path. The format is
// chosen by extension: .cue, .yaml or .yml.
//
// Returns CodeInvalidInput for an unsupported extension, CodeInvalidConfig if
// the file cannot be read or parsed, and CodeSchemaFailed if it does not
// match the schema.
func (l *Loader) Load(ctx context.Context, path string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig,
			"context cancelled", map[string]interface{}{"path": path})
	}

	if _, err := format(path); err != nil {
		return nil, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig,
			"failed to read configuration file", map[string]interface{}{"path": path})
	}

	return l.LoadBytes(ctx, data, path)
}

// LoadBytes validates and decodes configuration source. The filename selects
// the format and appears in error positions.
func (l *Loader) LoadBytes(ctx context.Context, source []byte, filename string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig,
			"context cancelled", map[string]interface{}{"path": filename})
	}

	kind, err := format(filename)
	if err != nil {
		return nil, err
	}

	data, err := l.compile(kind, source, filename)
	if err != nil {
		return nil, errors.WithContext(err, "path", filename)
	}

	schema, err := l.schema()
	if err != nil {
		return nil, err
	}

	unified, err := validate(schema, data)
	if err != nil {
		return nil, errors.WithContext(err, "path", filename)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig,
			"failed to decode configuration", map[string]interface{}{"path": filename})
	}
	if err := cfg.checkUnique(); err != nil {
		return nil, errors.WithContext(err, "path", filename)
	}

	return &cfg, nil
}

type sourceFormat int

const (
	formatCUE sourceFormat = iota
	formatYAML
)

func format(filename string) (sourceFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".cue":
		return formatCUE, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, errors.WithContext(
			errors.New(errors.CodeInvalidInput, "unsupported configuration format"),
			"path", filename,
		)
	}
}

// compile turns source into a CUE value without applying the schema.
func (l *Loader) compile(kind sourceFormat, source []byte, filename string) (cue.Value, error) {
	var val cue.Value
	switch kind {
	case formatYAML:
		file, err := cueyaml.Extract(filename, source)
		if err != nil {
			return cue.Value{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse YAML configuration")
		}
		val = l.cueCtx.BuildFile(file)
	default:
		val = l.cueCtx.CompileBytes(source, cue.Filename(filename))
	}

	if err := val.Err(); err != nil {
		return cue.Value{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to compile configuration")
	}
	return val, nil
}

// schema compiles the embedded schema and returns its #Config definition.
func (l *Loader) schema() (cue.Value, error) {
	val := l.cueCtx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	def := val.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return cue.Value{}, errors.Wrap(err, errors.CodeInternal, "embedded configuration schema is invalid")
	}
	return def, nil
}

package loader

import (
	"os"
	"strings"
)

// EnvLoader collects configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix, e.g. "VTEXT_"
	mapping map[string]string // Env var -> setting path
	lookup  func(string) (string, bool)
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix. The
// prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		lookup:  os.LookupEnv,
		environ: os.Environ,
	}
}

// NewEnvLoaderFrom creates a loader over a fixed variable set instead of
// the process environment.
func NewEnvLoaderFrom(prefix string, vars map[string]string) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.lookup = func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
	l.environ = func() []string {
		out := make([]string, 0, len(vars))
		for k, v := range vars {
			out = append(out, k+"="+v)
		}
		return out
	}
	return l
}

// defaultEnvMapping returns the short names that do not follow the
// SECTION_KEY pattern.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"VTEXT_FLOW":        "editor.flow",
		"VTEXT_ALIGNMENT":   "editor.alignment",
		"VTEXT_SPACING":     "editor.segment_spacing",
		"VTEXT_FONT_FAMILY": "format.family",
		"VTEXT_FONT_SIZE":   "format.size",
		"VTEXT_COLOR":       "format.color",
		"VTEXT_BLINK":       "caret.blink",
		"VTEXT_LOG_LEVEL":   "logging.level",
		"VTEXT_LOG_FILE":    "logging.file",
	}
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, path string) {
	l.mapping[envVar] = path
}

// Load returns raw values keyed by setting path. Mapped names are read
// first; any other prefixed variable is converted with envToPath, so
// VTEXT_EDITOR_MAX_UNDO becomes editor.max_undo. Empty values count as
// set.
func (l *EnvLoader) Load() map[string]string {
	out := make(map[string]string)

	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			out[path] = val
		}
	}

	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}
		if path := l.envToPath(name); path != "" {
			if _, exists := out[path]; !exists {
				out[path] = value
			}
		}
	}
	return out
}

// envToPath converts VTEXT_EDITOR_SEGMENT_SPACING to editor.segment_spacing.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return strings.ToLower(section) + "." + strings.ToLower(key)
}

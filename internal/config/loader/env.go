package loader

import (
	"os"
	"slices"
	"strconv"
	"strings"
)

// EnvLoader turns prefixed environment variables into settings.
type EnvLoader struct {
	prefix   string            // Environment variable prefix (e.g., "GRIDEDIT_")
	mapping  map[string]string // Env var -> config path
	sections []string          // Sections accepted from unmapped variables
	environ  func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix.
// The prefix should include the trailing underscore (e.g., "GRIDEDIT_").
// Unmapped variables are accepted when their first name part is one of
// sections: GRIDEDIT_EDITOR_MAX_ROWS becomes editor.max_rows.
func NewEnvLoader(prefix string, sections ...string) *EnvLoader {
	return &EnvLoader{
		prefix:   prefix,
		mapping:  defaultEnvMapping(prefix),
		sections: sections,
		environ:  os.Environ,
	}
}

// defaultEnvMapping returns the short aliases for common settings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "ROW_CAPACITY": "editor.row_capacity",
		prefix + "MAX_ROWS":     "editor.max_rows",
		prefix + "LOG_LEVEL":    "logging.level",
		prefix + "LOG_FILE":     "logging.file",
	}
}

// WithEnviron replaces the environment source, for tests.
func (l *EnvLoader) WithEnviron(environ func() []string) *EnvLoader {
	l.environ = environ
	return l
}

// AddMapping routes envVar to the dotted setting path configPath.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// Load collects the matching variables. An empty value is still a value.
func (l *EnvLoader) Load() (map[string]any, error) {
	settings := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
			section, _, _ := strings.Cut(path, ".")
			if !strings.Contains(path, ".") || !slices.Contains(l.sections, section) {
				continue
			}
		}
		setByPath(settings, path, parseValue(value))
	}

	return settings, nil
}

// envToPath converts GRIDEDIT_HISTORY_GROUP_THRESHOLD to history.group_threshold.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, setting, ok := strings.Cut(name, "_")
	if !ok {
		return section
	}
	return section + "." + setting
}

// parseValue types a variable's value: bool words, then integers, then
// the raw string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	return s
}

// setByPath stores value under a dotted path, creating tables as needed.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

package reqgen

// DefaultFileName is the base name of generated files.
const DefaultFileName = "reqwire.gen.go"

// Config controls a generation run.
type Config struct {
	// Dir is the working directory for package loading. Empty means the
	// process working directory.
	Dir string

	// Patterns are go/packages load patterns. Empty means ".".
	Patterns []string

	// FileName is the base name of the generated file written into each
	// package directory. Empty means DefaultFileName.
	FileName string

	// Env overrides the environment for the underlying build system, in
	// os.Environ form. Nil inherits the process environment.
	Env []string
}

func (c Config) withDefaults() Config {
	if c.FileName == "" {
		c.FileName = DefaultFileName
	}
	if len(c.Patterns) == 0 {
		c.Patterns = []string{"."}
	}
	return c
}

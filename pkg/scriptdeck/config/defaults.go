package config

// Default values used when no config file or flags override them.
const (
	// DefaultScriptExt is the filename suffix that marks a file as a script.
	DefaultScriptExt = ".py"

	// DefaultConfirmToken is the affirmative answer to the run prompt.
	// Matching is case-insensitive.
	DefaultConfirmToken = "Y"

	// DefaultRoot is the library root scanned when none is specified.
	DefaultRoot = "."

	// DefaultLogLevel is the default file log level.
	DefaultLogLevel = "info"

	// DefaultLogPrefix names the daily log files (prefix_YYYYMMDD.log).
	DefaultLogPrefix = "scriptdeck"
)

// DefaultUnits is the reference catalog: menu key to unit folder name.
// It is plain data; deployments replace it from the config file.
var DefaultUnits = map[string]string{
	"1": "Unidad 1 - Fundamentos POO",
	"2": "Unidad 2 - Herencia y Polimorfismo",
	"3": "Unidad 3 - Patrones de Diseño",
	"4": "Unidad 4 - Proyectos Prácticos",
}

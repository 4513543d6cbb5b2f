package analyzer

// Rules holds the textual heuristics used to recognise configuration reads.
// They are data so new services, accessors and framework exclusions can be
// added without touching the detectors.
type Rules struct {
	// Services are type names; a file is in scope when an import mentions one.
	Services []string
	// Accessors are method names whose calls read a configuration key.
	Accessors []string
	// Exclusions are callee substrings that never count as configuration reads.
	Exclusions []string
	// EnvRoot is the expression whose property reads are environment reads.
	EnvRoot string
}

// DefaultRules returns the built-in rule set
func DefaultRules() Rules {
	return Rules{
		Services:   []string{"EtcdService", "ConfigService"},
		Accessors:  []string{"get", "getOrThrow"},
		Exclusions: []string{"app.get"},
		EnvRoot:    "process.env",
	}
}

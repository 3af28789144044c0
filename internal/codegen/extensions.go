package codegen

import "fmt"

// Extension selects which optional files accompany a generated traversal
// model package.
type Extension int

const (
	// ExtensionNone generates only the base model stub.
	ExtensionNone Extension = iota

	// ExtensionTypedConfig adds typed configuration and query parameter
	// files; the stub's builder and service methods deserialize their JSON
	// inputs into those types.
	ExtensionTypedConfig

	// ExtensionTypedConfigAndEngine also adds an engine file holding the
	// model's loaded assets, with a conversion stub from the configuration
	// type.
	ExtensionTypedConfigAndEngine
)

// ParseExtension resolves the --extensions flag value. The empty string is
// treated as "none" so the flag can be omitted.
func ParseExtension(s string) (Extension, error) {
	switch s {
	case "", "none":
		return ExtensionNone, nil
	case "typed-config":
		return ExtensionTypedConfig, nil
	case "typed-config-and-engine":
		return ExtensionTypedConfigAndEngine, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected none, typed-config, or typed-config-and-engine)", ErrUnknownExtension, s)
	}
}

func (e Extension) String() string {
	switch e {
	case ExtensionTypedConfig:
		return "typed-config"
	case ExtensionTypedConfigAndEngine:
		return "typed-config-and-engine"
	default:
		return "none"
	}
}

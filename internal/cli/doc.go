// Package cli holds the plumbing shared by the crate-assign and crate-search
// commands: flag parsing, optional config files, logger construction and
// the mapping from errors to process exit codes.
//
// Configuration precedence, lowest to highest:
//
//	built-in defaults → config file (--config or CRATEFIT_CONFIG) → flags
//
// Config files ending in .json or .jsonc are read as JSON with comments and
// trailing commas; anything else is read as YAML. Unknown keys are errors.
package cli

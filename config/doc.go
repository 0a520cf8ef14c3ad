// Package config resolves the CLI contract of §6 ("lextet [-v] [-h] [-i]
// [-r RES -m MOD] NV") and its additive YAML batch-manifest form into
// validated search.Options and a target run list, grounded on cobra/pflag
// flag parsing (the richest CLI stack in the example pack, cue-lang-cue's
// go.mod) and gopkg.in/yaml.v3 for the manifest.
package config

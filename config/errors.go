package config

import "errors"

// ErrArgument is the sentinel for every §7 "argument error": bad or missing
// NV, bad -r/-m, NV beyond compiled limits, or a malformed manifest. main
// maps errors.Is(err, ErrArgument) to exit code 1 with a stderr message and
// nothing else (§7's two-bucket policy).
var ErrArgument = errors.New("config: invalid argument")

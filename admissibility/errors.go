package admissibility

import "errors"

// ErrLinkDisconnected is an internal-consistency error (§7): it must never
// be observed in practice because PostCheck rejects the disconnecting pick
// before the search recurses. No function in this module returns it;
// PostCheck reports a disconnected link by returning false.
var ErrLinkDisconnected = errors.New("admissibility: completed link is disconnected")

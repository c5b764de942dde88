package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and RPC clients return
// these (optionally wrapped) so the pipeline can classify failures without
// inspecting driver-specific error types.
//
// ErrUnavailable means the store or wallet daemon was temporarily
// unreachable; the next scheduled run is the retry.
var ErrUnavailable = errors.New("unavailable")

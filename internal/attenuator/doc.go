// Package attenuator provides the instrument registry and control facade
// for attctl.
//
// The Registry maps stable logical names ("att0", "att1", ...) to open
// instrument sessions. Names are assigned by discovery order at
// initialisation and never re-derived; each unit's supported value table is
// fetched once during initialisation and cached as the sole validation
// source for set operations.
//
// The Control facade wraps the registry in the caller-facing operations.
// It never returns a Go error: every outcome, including lower-layer
// transport and protocol failures, is reported as a Result triple
// (ok, value, message).
//
// # Usage
//
//	reg := attenuator.NewRegistry(opener)
//	reg.SetLogger(log)
//	if err := reg.Initialize(addresses); err != nil {
//	    return err
//	}
//	defer reg.Shutdown()
//
//	ctl := attenuator.NewControl(reg)
//	fmt.Println(ctl.SetValue("att0", "5"))
//
// # Thread Safety
//
// Registry and Control are safe for concurrent use. Operations against the
// same logical name are serialised by a per-instrument lock, since the
// underlying serial channel cannot multiplex overlapping commands.
package attenuator

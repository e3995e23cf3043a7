// Package lawspec loads and compiles law-parameter specs written in CUE.
//
// A spec directory contains .cue files declaring laws under a top-level
// "law" struct:
//
//	law: speeding: {
//		allowance: 5
//		thresholds: {
//			small:  0
//			medium: 10
//			large:  25
//		}
//	}
//
// Fields may be omitted; omitted fields take the standard defaults from
// law.DefaultSpeedingParams. Compilation uses the CUE SDK's Go API
// directly (not a CLI subprocess) and reports positions from the source
// files in its errors.
package lawspec

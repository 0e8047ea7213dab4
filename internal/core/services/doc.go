// Package services implements the core patch logic behind the driving
// ports.
//
//   - ResolveAnchor: pure anchor resolution (primary, then fallbacks)
//   - ApplyPlan: the patch engine, a pure text-to-outcome function
//   - PatchRunner: orchestrates read, apply, and conditional write
//     through the driven DocumentSource port
//
// Services may import domain and ports, never adapters.
package services

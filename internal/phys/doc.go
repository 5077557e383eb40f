// Package phys provides the closed-form calculator models.
//
// Each model implements the [sim.Model] interface, holding its inputs as
// struct fields and evaluating standard textbook formulas:
//
//   - [WindTurbine]: kinetic energy flux through the rotor disc
//   - [SolarPanel]: irradiance-to-energy conversion over a duration
//   - [EVBattery]: linear drain with a floor at full depletion
//   - [Projectile]: ballistic kinematics at launch height
//
// Models are pure: evaluating one never changes its parameters, and the same
// inputs always produce the same outputs. Validation rejects physically
// meaningless values (negative areas, efficiencies above 1) before any
// formula runs.
package phys

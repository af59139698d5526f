// Package physics models a solid cylindrical rod heated by an external
// power source.
//
// The package holds three types:
//
//   - [Material]: immutable density, specific heat and expansion coefficient
//   - [Rod]: a heat accumulator whose temperature and dimensions are derived
//     from the stored heat and its material
//   - [HeatSource]: a switchable emitter that injects power * delta joules
//     into its target on every tick
//
// Rod and HeatSource both satisfy [sim.Steppable] and are advanced by the
// simulation scheduler.
//
// # Linear model
//
// Expansion is first order in the temperature delta from the 293 K
// reference. Length and diameter are scaled by the volumetric factor, and
// the volume is derived from the already expanded dimensions:
//
//	rod, _ := physics.NewRod(iron, 1, 0.05)
//	rod.ModifyHeat(100)
//	fmt.Println(rod.Temperature(), rod.Length(), rod.Volume())
//
// Heat is never clamped. Removing more heat than the rod holds yields a
// negative absolute temperature, an artifact of the linear model.
package physics

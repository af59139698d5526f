package scenario

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/rodsim/internal/clock"
	"github.com/san-kum/rodsim/internal/config"
	"github.com/san-kum/rodsim/internal/physics"
	"github.com/san-kum/rodsim/internal/report"
	"github.com/san-kum/rodsim/internal/sim"
)

// Scenario is a wired simulation: one rod heated by one heat source. The
// simulation owns the rod and the heater; the heater only borrows the rod.
type Scenario struct {
	Material *physics.Material
	Rod      *physics.Rod
	Heater   *physics.HeatSource
	Sim      *sim.Simulation
	Table    *report.Table
}

// Build constructs the scenario described by cfg. When out is non-nil the
// heat capacity banner is written to it and a report table is attached to
// the rod.
func Build(cfg *config.Config, clk clock.Clock, out io.Writer) (*Scenario, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	material, err := cfg.Material.Build()
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"material":      material.Name(),
		"density":       material.Density(),
		"specific_heat": material.SpecificHeat(),
		"expansion":     material.ExpansionCoefficient(),
	}).Debug("material resolved")

	if out != nil {
		if _, err := fmt.Fprintf(out, "Heat capacity: %f J/(kg * C)\n", material.SpecificHeat()); err != nil {
			return nil, err
		}
	}

	rod, err := physics.NewRod(material, cfg.Rod.Length, cfg.Rod.Diameter)
	if err != nil {
		return nil, fmt.Errorf("build rod: %w", err)
	}
	if cfg.Rod.InitialTemperature != physics.ReferenceTemperature {
		rod.SetTemperature(cfg.Rod.InitialTemperature)
	}
	log.WithFields(log.Fields{
		"length":      rod.STPLength(),
		"diameter":    rod.STPDiameter(),
		"mass":        rod.Mass(),
		"heat":        rod.Heat(),
		"temperature": rod.Temperature(),
	}).Info("rod constructed")

	heater := physics.NewHeatSource(cfg.Heater.Power)
	heater.SetTarget(rod)
	if cfg.Heater.On {
		heater.TurnOn()
	}
	log.WithFields(log.Fields{
		"power": heater.Power(),
		"on":    heater.On(),
	}).Info("heat source wired")

	s := sim.New(clk, sim.WithRate(cfg.Loop.Rate))
	s.AddObject(heater)
	s.AddObject(rod)

	sc := &Scenario{
		Material: material,
		Rod:      rod,
		Heater:   heater,
		Sim:      s,
	}
	if out != nil {
		sc.Table = report.NewTable(out, clk)
		rod.Attach(sc.Table)
	}
	return sc, nil
}

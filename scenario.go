package main

import (
	"fmt"
	"log"
)

// Velocities below this value count as no groundwater flow, m/d
const noFlowEpsilon = 1e-3

// Groundwater flow regime of a scenario.
type FlowRegime string

const (
	RegimeLow    FlowRegime = "low"
	RegimeMedium FlowRegime = "medium"
	RegimeHigh   FlowRegime = "high"
)

/*
Pore velocity of the regime, m/d

LOW is essentially pure conduction; MEDIUM and HIGH add advection.
*/
func (r FlowRegime) velocity_md() float64 {
	switch r {
	case RegimeLow:
		return 0.001
	case RegimeMedium:
		return 0.1
	case RegimeHigh:
		return 1.0
	default:
		panic("invalid flow regime")
	}
}

// Aquifer porosity of the regime, -
func (r FlowRegime) porosity() float64 {
	// All three scenarios share n = 0.2 so the methods stay comparable.
	switch r {
	case RegimeLow, RegimeMedium, RegimeHigh:
		return 0.2
	default:
		panic("invalid flow regime")
	}
}

// Pore velocity of the regime, m/s
func (r FlowRegime) velocity_ms() float64 {
	return r.velocity_md() / 86400.0
}

// Comparison method.
type Method string

const (
	MethodEED       Method = "eed"
	MethodGFunction Method = "gfunction"
	MethodPoint2    Method = "point2"
	MethodModflow2D Method = "modflow2d"
	MethodModflow3D Method = "modflow3d"
)

/*
Applicability of a method to groundwater flow regimes.

A method outside its regime does not fail numerically; it silently produces
the wrong physics. The capability is therefore checked explicitly before a
run instead of being left to call-site discipline.
*/
type MethodCapability struct {
	models_advection bool
	max_velocity_md  float64 // velocity above which results are rejected, m/d; 0 = no limit
	caution          string  // non-fatal caveat logged when the method runs in this regime
}

func (m Method) capability() MethodCapability {
	switch m {
	case MethodEED:
		return MethodCapability{
			models_advection: false,
		}
	case MethodGFunction:
		return MethodCapability{
			models_advection: false,
		}
	case MethodPoint2:
		return MethodCapability{
			models_advection: true,
			caution:          "2D formulation ignores vertical conduction and the surface boundary; long-horizon bias against 3D solutions",
		}
	case MethodModflow2D:
		return MethodCapability{
			models_advection: true,
			caution:          "2D transport is only validated in the medium-velocity regime",
		}
	case MethodModflow3D:
		return MethodCapability{
			models_advection: true,
			caution:          "overestimates advective heat loss at high velocity",
		}
	default:
		panic("invalid method")
	}
}

/*
Check that a method may run at the given pore velocity.

Methods that do not model advection reject any velocity above the no-flow
threshold. Non-fatal caveats are logged.

Args:
	v_md: pore velocity, m/d

Returns:
	error when the method is inapplicable
*/
func (m Method) check_velocity(v_md float64) error {
	c := m.capability()

	if !c.models_advection && v_md > noFlowEpsilon {
		return fmt.Errorf("method %s assumes zero groundwater flow, got v=%g m/d", m, v_md)
	}
	if c.max_velocity_md > 0.0 && v_md > c.max_velocity_md {
		return fmt.Errorf("method %s is not applicable above %g m/d, got v=%g m/d", m, c.max_velocity_md, v_md)
	}
	if c.caution != "" {
		log.Printf("%s: %s", m, c.caution)
	}
	return nil
}

/*
One simulation scenario: a flow regime applied to the reference case.

POINT2 and the 3D finite-difference model disagree in amplitude at high
velocity (2D planar vs full 3D vertical mixing); the methods are kept as
independent models and never reconciled against each other.
*/
type Scenario struct {
	regime  FlowRegime
	n_years int
}

func NewScenario(regime FlowRegime, n_years int) Scenario {
	if n_years < 1 {
		panic(fmt.Sprintf("scenario must cover at least one year, got %d", n_years))
	}
	return Scenario{regime: regime, n_years: n_years}
}

// All regimes of the study, in ascending velocity.
func all_regimes() []FlowRegime {
	return []FlowRegime{RegimeLow, RegimeMedium, RegimeHigh}
}

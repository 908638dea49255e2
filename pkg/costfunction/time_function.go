package costfunction

import (
	"github.com/pthyseba/astar/pkg/datastructure"
)

// ChargingTimeFunction: one distance unit costs one time unit and one fuel unit, and every stop
// tops the tank up to maxFuel at one time unit per missing fuel unit.
type ChargingTimeFunction struct {
	network Network
}

func NewChargingTimeFunction(network Network) *ChargingTimeFunction {
	return &ChargingTimeFunction{
		network: network,
	}
}

func (tf *ChargingTimeFunction) TravelTime(a, b datastructure.Index) uint64 {
	return tf.network.Distance(a, b)
}

func (tf *ChargingTimeFunction) FuelConsumption(a, b datastructure.Index) uint64 {
	return tf.network.Distance(a, b)
}

// ChargeTime is the time needed to recharge from fuelLeft to a full tank.
func (tf *ChargingTimeFunction) ChargeTime(fuelLeft uint64) uint64 {
	maxFuel := tf.network.MaxFuel()
	if fuelLeft >= maxFuel {
		return 0
	}
	return maxFuel - fuelLeft
}

// EstimateTravelTime ignores charging, so it never overestimates the remaining time.
func (tf *ChargingTimeFunction) EstimateTravelTime(a, b datastructure.Index) uint64 {
	return tf.network.Distance(a, b)
}

// FuelLeftAfter is the fuel on arrival at b after leaving a with a full tank. saturates at 0.
func (tf *ChargingTimeFunction) FuelLeftAfter(a, b datastructure.Index) uint64 {
	maxFuel := tf.network.MaxFuel()
	consumption := tf.FuelConsumption(a, b)
	if consumption >= maxFuel {
		return 0
	}
	return maxFuel - consumption
}

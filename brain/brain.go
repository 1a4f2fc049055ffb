// Package brain implements the feed-forward evaluator that runs one
// timestep of a wired NeuralNet given sensor inputs, producing action
// levels.
package brain

import (
	"math"

	"github.com/pelagic-labs/biotope/actions"
	"github.com/pelagic-labs/biotope/sensors"
	"github.com/pelagic-labs/biotope/wiring"
)

// Evaluate runs one feed-forward pass over net, reading sensors for
// the given agent/context and returning the raw (unbounded) action
// accumulator values, one per enabled action.
//
// Neuron outputs are latched with tanh exactly once, at the first
// connection whose sink is an action — guaranteed to exist at
// net.Connections[net.NumPassA] when there is at least one pass-B
// connection, since pass-A entries all precede pass-B entries.
func Evaluate(net *wiring.NeuralNet, agent sensors.AgentView, ctx sensors.Context) []float64 {
	neuronAcc := make([]float64, len(net.Neurons))
	actionOut := make([]float64, actions.Count)

	latched := false
	latch := func() {
		for i := range net.Neurons {
			if net.Neurons[i].Driven {
				net.Neurons[i].Output = math.Tanh(neuronAcc[i])
			}
		}
		latched = true
	}

	for i, conn := range net.Connections {
		if !latched && i >= net.NumPassA {
			latch()
		}

		var inputValue float64
		if conn.SourceIsSensor() {
			inputValue = sensors.Dispatch(int(conn.SourceNum()), agent, ctx)
		} else {
			inputValue = net.Neurons[conn.SourceNum()].Output
		}

		weighted := inputValue * conn.WeightAsFloat()

		if conn.SinkIsAction() {
			actionOut[conn.SinkNum()] += weighted
		} else {
			neuronAcc[conn.SinkNum()] += weighted
		}
	}

	if !latched {
		latch()
	}

	return actionOut
}

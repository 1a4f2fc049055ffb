// Package wiring transforms a renumbered Genome into an executable
// NeuralNet: it builds the connection map, prunes useless neurons,
// compacts neuron numbering, and orders connections so all
// gene->neuron connections precede all gene->action connections.
package wiring

import "github.com/pelagic-labs/biotope/gene"

// Neuron is one surviving neuron in a wired net.
type Neuron struct {
	Output float64 // in [-1,1]; 0.5 before the first tanh pass
	Driven bool     // true iff at least one non-self input exists
}

// NeuralNet is the wired, executable result of §4.2's algorithm.
type NeuralNet struct {
	Connections gene.Genome // Pass-A (sink=neuron) then Pass-B (sink=action)
	Neurons     []Neuron
	// NumPassA is the count of leading connections whose sink is a
	// neuron; Connections[NumPassA:] all sink to actions.
	NumPassA int
}

type neuronInfo struct {
	outputs     int
	selfInputs  int
	otherInputs int
	order       int // original discovery order, for stable compaction
}

// Wire builds the executable net from a genome already renumbered
// into [0,maxNeurons) / [0,numSensors) / [0,numActions) domains.
func Wire(g gene.Genome, maxNeurons int) NeuralNet {
	genes := append(gene.Genome(nil), g...)

	// Step 1: connection map, one linear sweep.
	m := map[uint8]*neuronInfo{}
	order := 0
	get := func(id uint8) *neuronInfo {
		info, ok := m[id]
		if !ok {
			info = &neuronInfo{order: order}
			order++
			m[id] = info
		}
		return info
	}

	for _, gn := range genes {
		if !gn.SinkIsAction() {
			sink := get(gn.SinkNum())
			if !gn.SourceIsSensor() && gn.SourceNum() == gn.SinkNum() {
				sink.selfInputs++
			} else {
				sink.otherInputs++
			}
		}
		if !gn.SourceIsSensor() {
			src := get(gn.SourceNum())
			src.outputs++
		}
	}

	// Step 2: iteratively prune neurons with outputs == selfInputs,
	// bounded by the initial neuron count (m shrinks as we delete from
	// it, so the bound must be captured up front).
	initialNeurons := len(m)
	for round := 0; round < initialNeurons; round++ {
		pruned := false
		for id, info := range m {
			if info.outputs != info.selfInputs {
				continue
			}
			pruned = true
			delete(m, id)
			// Remove every gene whose sink is this neuron; for each
			// such gene whose source is a neuron, decrement that
			// source's outputs.
			kept := genes[:0:0]
			for _, gn := range genes {
				if !gn.SinkIsAction() && gn.SinkNum() == id {
					if !gn.SourceIsSensor() {
						if src, ok := m[gn.SourceNum()]; ok {
							src.outputs--
						}
					}
					continue
				}
				kept = append(kept, gn)
			}
			genes = kept
		}
		if !pruned {
			break
		}
	}

	// Step 3: compact numbering in original discovery order.
	type survivor struct {
		id   uint8
		info *neuronInfo
	}
	survivors := make([]survivor, 0, len(m))
	for id, info := range m {
		survivors = append(survivors, survivor{id, info})
	}
	// Stable sort by discovery order.
	for i := 1; i < len(survivors); i++ {
		j := i
		for j > 0 && survivors[j-1].info.order > survivors[j].info.order {
			survivors[j-1], survivors[j] = survivors[j], survivors[j-1]
			j--
		}
	}
	remap := make(map[uint8]uint8, len(survivors))
	for i, s := range survivors {
		remap[s.id] = uint8(i)
	}

	// Step 4: emit connections in two passes, preserving relative order.
	// Self-loop genes (neuron source == neuron sink) are excluded even
	// when their neuron survives pruning: the single tanh-latch
	// evaluator (§4.3) has no mechanism to usefully consume a
	// same-step self-feed, and spec.md's worked S2 scenario expects
	// them dropped (see DESIGN.md).
	var passA, passB gene.Genome
	for _, gn := range genes {
		if !gn.SinkIsAction() && !gn.SourceIsSensor() && gn.SourceNum() == gn.SinkNum() {
			continue
		}
		out := gn
		if !gn.SinkIsAction() {
			out.SetSinkNum(remap[gn.SinkNum()])
			if !gn.SourceIsSensor() {
				out.SetSourceNum(remap[gn.SourceNum()])
			}
			passA = append(passA, out)
		} else {
			if !gn.SourceIsSensor() {
				out.SetSourceNum(remap[gn.SourceNum()])
			}
			passB = append(passB, out)
		}
	}

	// Step 5: initialise neurons.
	neurons := make([]Neuron, len(survivors))
	for _, s := range survivors {
		neurons[remap[s.id]] = Neuron{Output: 0.5, Driven: s.info.otherInputs != 0}
	}

	connections := append(passA, passB...)
	return NeuralNet{
		Connections: connections,
		Neurons:     neurons,
		NumPassA:    len(passA),
	}
}

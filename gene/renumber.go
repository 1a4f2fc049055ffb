package gene

// Renumber reduces every gene's source/sink indices into their valid
// domains: neuron indices mod maxNeurons, sensor indices mod
// numSensors, action indices mod numActions. The result's raw
// source/sink indices are guaranteed to already lie in-domain, so
// later wiring stages never need to re-check range.
func Renumber(g Genome, maxNeurons, numSensors, numActions int) Genome {
	out := make(Genome, len(g))
	for i, src := range g {
		gn := src
		if gn.SourceIsSensor() {
			gn.SetSourceNum(uint8(int(gn.SourceNum()) % numSensors))
		} else {
			gn.SetSourceNum(uint8(int(gn.SourceNum()) % maxNeurons))
		}
		if gn.SinkIsAction() {
			gn.SetSinkNum(uint8(int(gn.SinkNum()) % numActions))
		} else {
			gn.SetSinkNum(uint8(int(gn.SinkNum()) % maxNeurons))
		}
		out[i] = gn
	}
	return out
}

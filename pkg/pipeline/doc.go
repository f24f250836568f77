// Package pipeline simulates a point-to-point digital link as an ordered sequence of stages.
//
// A pipeline owns one signal for the duration of a run. The stages are executed one after the other and
// each of them transforms the signal in place: a bit source fills it with random symbols, then noise,
// modulation, multipath propagation, correction and demodulation stages reshape it. Error counters compare
// the live signal with the reference captured right after the bit source and report the mismatches.
//
// Every stage is validated before the first one runs, so a misconfigured pipeline fails before doing any
// work. The pipeline stops on the first error and no partial result is returned.
//
// Pipeline options observe a run without changing it. The measure, drawer, probe and logging packages
// provide options to time the stages, draw the chain as a DOT graph, keep copies of intermediate signals
// and log the progress of a run.
//
// Independent simulations, for instance to estimate an error rate over many random sequences, can be run
// concurrently with RunTrials. Each trial uses its own pipeline and its own generator.
package pipeline

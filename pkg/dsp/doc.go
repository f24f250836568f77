// Package dsp implements the signal algorithms of the link simulator.
//
// Every function works in place on a Signal sized by a Grid. Working buffers a function needs are private
// to the call and the output always keeps the length of the input.
package dsp

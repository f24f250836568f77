package dsp

// Signal is a uniformly sampled real waveform, index 0 being the earliest sample.
type Signal []float64

// Clone returns a value copy of the signal.
func (s Signal) Clone() Signal {
	if s == nil {
		return nil
	}
	out := make(Signal, len(s))
	copy(out, s)

	return out
}

// Window returns the samples of symbol window k. It panics if the window is outside the signal.
func (s Signal) Window(k, symbolLength int) Signal {
	return s[k*symbolLength : (k+1)*symbolLength]
}

// fill sets every sample of s to v.
func (s Signal) fill(v float64) {
	for i := range s {
		s[i] = v
	}
}

// delayed returns a zero-filled buffer of len(s)+offset samples holding s scaled by gain from offset on.
func (s Signal) delayed(offset int, gain float64) []float64 {
	buf := make([]float64, len(s)+offset)
	for j, v := range s {
		buf[j+offset] = v * gain
	}

	return buf
}

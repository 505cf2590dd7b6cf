package fs

// NewCanonicalizerWithEval builds a Canonicalizer with a substitute symlink resolver.
func NewCanonicalizerWithEval(eval func(string) (string, error)) *Canonicalizer {
	return &Canonicalizer{evalSymlinks: eval}
}

package entity

// Chunk is a byte range [Start, End) of the input file assigned to one worker.
type Chunk struct {
	Start int64
	End   int64
}

func (c Chunk) Size() int64 {
	return c.End - c.Start
}

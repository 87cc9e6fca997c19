package model

type Pair struct {
	Start uint32
	End   uint32
}

// ChunkOverview locates one chunk file and the chord-key range it covers.
type ChunkOverview struct {
	Start    string
	End      string
	Filename string
}

type ChunkIndex = map[string]Pair

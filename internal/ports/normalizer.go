package ports

// Normalizer defines the interface for a single text cleaning transformation.
type Normalizer interface {
	Normalize(text string) string
}

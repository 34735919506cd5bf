package types

// Catalog defines the read-only query operations the tool layer depends on.
// Implementations must be safe for concurrent use without locking; all data
// is fixed at load time.
type Catalog interface {
	// Principles returns the full ordered principle set with its introduction.
	Principles() PrincipleSet

	// SearchPrinciples returns every principle whose name or description
	// contains term, case-insensitively. An empty term returns all principles.
	SearchPrinciples(term string) []Principle

	// Principle looks up a principle by name, case-insensitively. Returns an
	// error wrapping ErrNotFound when no principle has that name.
	Principle(name string) (*Principle, error)

	// Introduction returns the prefatory text for the principle set.
	Introduction() string

	// Transcript looks up the transcript for a principle by name,
	// case-insensitively. Returns an error wrapping ErrNotFound when the
	// principle does not exist or has no transcript; the two cases carry
	// distinct messages.
	Transcript(name string) (*TranscriptEntry, error)

	// PrinciplesWithTranscripts returns the names of principles that have a
	// transcript, in principle-list order.
	PrinciplesWithTranscripts() []string

	// SearchTranscripts returns an excerpt match for every transcript whose
	// content contains term, case-insensitively. Returns an error wrapping
	// ErrEmptySearchTerm when term is empty.
	SearchTranscripts(term string) ([]TranscriptMatch, error)
}

package textkit

// Engine bundles the analysis components around one shared resource
// loader. It is safe for concurrent use; all scoring state is local to
// each call.
type Engine struct {
	resources *Resources
	tokenizer *Tokenizer
	stopwords *StopwordProvider
}

// NewEngine creates an engine backed by the given resource loader.
func NewEngine(resources *Resources) *Engine {
	return &Engine{
		resources: resources,
		tokenizer: NewTokenizer(resources),
		stopwords: NewStopwordProvider(resources),
	}
}

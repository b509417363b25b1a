package badger

// NewMemoryRepository creates an in-memory article repository for testing.
// Caller must close the repository when done.
func NewMemoryRepository() (*ArticleRepository, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return NewArticleRepository(backend), nil
}

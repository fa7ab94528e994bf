package mapping

// MapViewModels maps a slice of entities into view models using mapFunc.
func MapViewModels[T any, V any](entities []T, mapFunc func(T) V) []V {
	viewModels := make([]V, 0, len(entities))
	for _, entity := range entities {
		viewModels = append(viewModels, mapFunc(entity))
	}
	return viewModels
}

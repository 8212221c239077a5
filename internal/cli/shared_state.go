package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// Transient status text shown in the bottom bar after an operation.
	LastError string
}

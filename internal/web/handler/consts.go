package handler

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// IDPath is the path of a single collection item.
	IDPath = "/:id"

	// APIPath is the prefix of every JSON endpoint.
	APIPath = "/api"

	// ErrNilDepsFatalLogMsg is used if app or one of the dependencies is nil.
	ErrNilDepsFatalLogMsg = "app or dependencies are nil"
)

package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilACFatalLogMsg is used if the app or cfg var pointer is nil.
	ErrNilACFatalLogMsg = "app or cfg is nil"

	// LocalsCurrentUser is the fiber locals key for the signed-in user.
	LocalsCurrentUser = "CurrentUser"

	// LocalsCapabilities is the fiber locals key for the capability set.
	LocalsCapabilities = "Capabilities"

	// LocalsToken is the fiber locals key for the backend token.
	LocalsToken = "Token"
)

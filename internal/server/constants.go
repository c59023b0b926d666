package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// Limits applied to incoming requests
const (
	// MaxRequestBodyBytes caps JSON request bodies. Game requests are tiny;
	// anything larger is malformed or hostile.
	MaxRequestBodyBytes = 1 << 20
)

package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often an idle stream gets a ping.
const KeepaliveInterval = 30 * time.Second

// Stream-only event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters of the feed endpoint
const (
	QueryTypes  = "types"
	QueryPlayer = "player"
)

// Log messages
const (
	LogMsgClientConnected    = "Feed client connected"
	LogMsgClientDisconnected = "Feed client disconnected"
	LogMsgEventDropped       = "Feed event dropped"
	LogMsgWriteError         = "Failed to write feed event"
	LogMsgSubscribed         = "Feed subscribed to game events"
)

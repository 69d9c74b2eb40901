package tui

import "time"

// MsgInitAssets initializes the asset list in the UI.
type MsgInitAssets struct {
	Assets []string
}

// MsgBuildStart indicates an asset build (span) has started.
type MsgBuildStart struct {
	SpanID    string
	Asset     string
	StartTime time.Time
}

// MsgBuildLog carries a chunk of build output for a specific asset.
type MsgBuildLog struct {
	SpanID string
	Data   []byte
}

// MsgBuildComplete indicates an asset build has finished.
type MsgBuildComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

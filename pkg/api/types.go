package api

import (
	"github.com/segmentio/ksuid"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// TextEncodeRequest carries the text mode input
type TextEncodeRequest struct {
	Text string `json:"text"`
}

// TextEncodeResponse carries the hex run-code of the input text
type TextEncodeResponse struct {
	Hex string `json:"hex"`
}

// TextDecodeRequest carries a hex run-code to expand
type TextDecodeRequest struct {
	Hex string `json:"hex"`
}

// TextDecodeResponse carries the recovered text
type TextDecodeResponse struct {
	Text string `json:"text"`
}

// ArtifactCreated is the receipt for a stored encoded artifact
type ArtifactCreated struct {
	ID           string `json:"id"`
	RawBytes     int    `json:"raw_bytes"`
	EncodedBytes int    `json:"encoded_bytes"`
}

// StatsResponse reports service statistics
type StatsResponse struct {
	Artifacts     int    `json:"artifacts"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Version       string `json:"version,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port         int
	Bind         string
	APIKey       string
	MaxBodyBytes int64 // Largest accepted request body (0 = 32 MiB)
}

const defaultMaxBodyBytes = 32 << 20

func (c ServerConfig) maxBodyBytes() int64 {
	if c.MaxBodyBytes <= 0 {
		return defaultMaxBodyBytes
	}
	return c.MaxBodyBytes
}

// ArtifactStore defines the artifact persistence operations the server needs
type ArtifactStore interface {
	Put(encoded []byte) (ksuid.KSUID, error)
	Get(id ksuid.KSUID) ([]byte, error)
	Delete(id ksuid.KSUID) error
	Count() (int, error)
}

package storage

import "time"

// Asset represents a file or directory in storage
type Asset struct {
	URL         string    `json:"url"`
	Name        string    `json:"name"`
	IsDir       bool      `json:"isDir"`
	Mode        string    `json:"mode,omitempty"`
	Size        int64     `json:"size,omitempty"`
	ModTime     time.Time `json:"modTime,omitempty"`
	Created     time.Time `json:"created,omitempty"`
	Accessed    time.Time `json:"accessed,omitempty"`
	ContentType string    `json:"contentType,omitempty"`
}

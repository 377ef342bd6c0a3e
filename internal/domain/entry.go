package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// PreviewFormat is the decodable kind of a photo file. It is resolved once
// per file from the lowercased extension and matched exhaustively afterwards.
type PreviewFormat int

const (
	FormatUnsupported PreviewFormat = iota
	FormatPNG
	FormatJPEG
)

func (f PreviewFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unsupported"
	}
}

func DetectFormat(name string) PreviewFormat {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return FormatPNG
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatUnsupported
	}
}

type PhotoEntry struct {
	SourcePath string
	Name       string
	Ext        string
	Format     PreviewFormat
	TakenAt    time.Time
	DestDir    string
}

func NewPhotoEntry(sourcePath string) PhotoEntry {
	name := filepath.Base(sourcePath)
	return PhotoEntry{
		SourcePath: sourcePath,
		Name:       name,
		Ext:        strings.ToLower(filepath.Ext(name)),
		Format:     DetectFormat(name),
	}
}

// DestPath is the full target path for the entry under its effective
// destination directory, keeping the original file name.
func (e PhotoEntry) DestPath() string {
	return filepath.Join(e.DestDir, e.Name)
}

package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name string
		want PreviewFormat
	}{
		{"a.png", FormatPNG},
		{"a.PNG", FormatPNG},
		{"a.jpg", FormatJPEG},
		{"a.JPEG", FormatJPEG},
		{"a.Jpg", FormatJPEG},
		{"a.gif", FormatUnsupported},
		{"a.txt", FormatUnsupported},
		{"noext", FormatUnsupported},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectFormat(tc.name), "name %q", tc.name)
	}
}

func TestNewPhotoEntry(t *testing.T) {
	entry := NewPhotoEntry(filepath.Join("/photos/in", "DSC0001.JPG"))

	assert.Equal(t, "DSC0001.JPG", entry.Name)
	assert.Equal(t, ".jpg", entry.Ext)
	assert.Equal(t, FormatJPEG, entry.Format)
}

func TestDestPathKeepsOriginalName(t *testing.T) {
	entry := NewPhotoEntry("/photos/in/DSC0001.jpg")
	entry.DestDir = "/photos/out/2023"

	assert.Equal(t, filepath.Join("/photos/out/2023", "DSC0001.jpg"), entry.DestPath())
}

func TestMenuActionsOrder(t *testing.T) {
	want := []Action{ActionMove, ActionCopy, ActionSkip, ActionDelete, ActionExit}
	assert.Equal(t, want, MenuActions())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Move", ActionMove.String())
	assert.Equal(t, "Exit", ActionExit.String())
	assert.Equal(t, "Unknown", Action(99).String())
}

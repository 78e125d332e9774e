package models

import (
	"strings"
	"time"
)

var imageExtensions = []string{"jpg", "jpeg", "png", "gif", "bmp", "webp"}
var videoExtensions = []string{"mp4", "avi", "mov", "wmv", "flv", "webm"}

type MediaFile struct {
	Media_File_ID int       `json:"mediaFileId" goqu:"skipinsert"`
	File_Name     string    `json:"fileName"`
	Original_Name string    `json:"originalName"`
	Uploaded_At   time.Time `json:"uploadedAt" goqu:"skipinsert"`
}

// Extension returns the lowercased file extension without the dot,
// or "" when the stored name has none.
func (m MediaFile) Extension() string {
	idx := strings.LastIndex(m.File_Name, ".")
	if idx < 0 || idx == len(m.File_Name)-1 {
		return ""
	}
	return strings.ToLower(m.File_Name[idx+1:])
}

func (m MediaFile) IsImage() bool {
	ext := m.Extension()
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (m MediaFile) IsVideo() bool {
	ext := m.Extension()
	for _, e := range videoExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

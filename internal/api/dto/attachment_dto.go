package dto

import "time"

// AddPhotoRequest payload.
type AddPhotoRequest struct {
	Name       string `json:"name"`
	FilePath   string `json:"file_path"`
	Base64Data string `json:"base64_data"`
}

// PhotoResponse metadata; the embedded image data is returned as stored.
type PhotoResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FilePath   string    `json:"file_path"`
	CapturedAt time.Time `json:"captured_at"`
	Base64Data string    `json:"base64_data"`
}

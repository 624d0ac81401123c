package dto

import (
	"time"

	"genai-studio-be/internal/constant"

	"github.com/google/uuid"
)

type GenerateImageRequest struct {
	Prompt      string `json:"prompt" validate:"required"`
	AspectRatio string `json:"aspectRatio"`
	ImageCount  int    `json:"imageCount"`
}

func (GenerateImageRequest) MissingFieldsMessage() string {
	return constant.MsgImagePromptRequired
}

// GenerateImageResponse carries either the single-image fields or Images
// when more than one image was requested.
type GenerateImageResponse struct {
	ImageUrl string               `json:"imageUrl,omitempty"`
	ImageId  *uuid.UUID           `json:"imageId,omitempty"`
	Images   []GeneratedImageItem `json:"images,omitempty"`
}

// GeneratedImageItem has Message set instead of the image fields when that
// item failed.
type GeneratedImageItem struct {
	ImageUrl string     `json:"imageUrl,omitempty"`
	ImageId  *uuid.UUID `json:"imageId,omitempty"`
	Message  string     `json:"message,omitempty"`
}

type ImageHistoryItem struct {
	Id          uuid.UUID `json:"id"`
	Prompt      string    `json:"prompt"`
	ImageUrl    string    `json:"imageUrl"`
	AspectRatio string    `json:"aspectRatio"`
	Timestamp   time.Time `json:"timestamp"`
}

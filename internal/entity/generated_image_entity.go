package entity

import (
	"time"

	"github.com/google/uuid"
)

type AspectRatio string

const (
	AspectRatioSquare    AspectRatio = "1:1"
	AspectRatioLandscape AspectRatio = "16:9"
	AspectRatioPortrait  AspectRatio = "9:16"
	AspectRatioClassic   AspectRatio = "4:3"
)

// ImageParameters records what was sent upstream for a generated image.
type ImageParameters struct {
	Model             string  `json:"model"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
}

type GeneratedImage struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Prompt      string
	ImageUrl    string
	AspectRatio AspectRatio
	Parameters  ImageParameters
	Timestamp   time.Time
}

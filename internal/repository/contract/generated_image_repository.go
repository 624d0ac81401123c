package contract

import (
	"context"

	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/repository/specification"
)

type GeneratedImageRepository interface {
	Create(ctx context.Context, image *entity.GeneratedImage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedImage, error)
}

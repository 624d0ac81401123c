package mapper

import (
	"encoding/json"

	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/model"

	"gorm.io/datatypes"
)

type ImageMapper struct{}

func NewImageMapper() *ImageMapper {
	return &ImageMapper{}
}

func (m *ImageMapper) ToEntity(img *model.GeneratedImage) *entity.GeneratedImage {
	if img == nil {
		return nil
	}

	var params entity.ImageParameters
	if len(img.Parameters) > 0 {
		// Parameters are informational; a corrupt column must not hide the image.
		_ = json.Unmarshal(img.Parameters, &params)
	}

	return &entity.GeneratedImage{
		Id:          img.Id,
		UserId:      img.UserId,
		Prompt:      img.Prompt,
		ImageUrl:    img.ImageUrl,
		AspectRatio: entity.AspectRatio(img.AspectRatio),
		Parameters:  params,
		Timestamp:   img.Timestamp,
	}
}

func (m *ImageMapper) ToModel(img *entity.GeneratedImage) (*model.GeneratedImage, error) {
	if img == nil {
		return nil, nil
	}

	params, err := json.Marshal(img.Parameters)
	if err != nil {
		return nil, err
	}

	return &model.GeneratedImage{
		Id:          img.Id,
		UserId:      img.UserId,
		Prompt:      img.Prompt,
		ImageUrl:    img.ImageUrl,
		AspectRatio: string(img.AspectRatio),
		Parameters:  datatypes.JSON(params),
		Timestamp:   img.Timestamp,
	}, nil
}

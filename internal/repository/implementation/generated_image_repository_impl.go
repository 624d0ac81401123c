package implementation

import (
	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/mapper"
	"genai-studio-be/internal/model"
	"genai-studio-be/internal/repository/contract"

	"gorm.io/gorm"
)

type GeneratedImageRepositoryImpl struct {
	gormRepository[entity.GeneratedImage, model.GeneratedImage]
}

func NewGeneratedImageRepository(db *gorm.DB) contract.GeneratedImageRepository {
	m := mapper.NewImageMapper()
	return &GeneratedImageRepositoryImpl{
		gormRepository: gormRepository[entity.GeneratedImage, model.GeneratedImage]{
			db:       db,
			toModel:  m.ToModel,
			toEntity: m.ToEntity,
		},
	}
}

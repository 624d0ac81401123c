package implementation

import (
	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/mapper"
	"genai-studio-be/internal/model"
	"genai-studio-be/internal/repository/contract"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	gormRepository[entity.User, model.User]
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	m := mapper.NewUserMapper()
	return &UserRepositoryImpl{
		gormRepository: gormRepository[entity.User, model.User]{
			db: db,
			toModel: func(u *entity.User) (*model.User, error) {
				return m.ToModel(u), nil
			},
			toEntity: m.ToEntity,
		},
	}
}

package mappers

import (
	"github.com/lumira-inc/lumira/internal/domain/user"
	"github.com/lumira-inc/lumira/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		SubjectID: u.SubjectID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Verified:  u.Verified(),
		Credits:   u.Credits(),
		Role:      u.Role(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func UserToDomain(model *models.UserModel) *user.User {
	return user.ReconstructUser(
		model.ID,
		model.SubjectID,
		model.Name,
		model.Email,
		model.Verified,
		model.Credits,
		model.Role,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

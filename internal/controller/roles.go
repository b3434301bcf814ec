package controller

import "flowa-be/internal/entity"

var (
	adminOnly       = []string{string(entity.UserRoleAdmin)}
	brandManagers   = []string{string(entity.UserRoleAdmin), string(entity.UserRoleBrandManager)}
	contentCreators = []string{
		string(entity.UserRoleAdmin),
		string(entity.UserRoleBrandManager),
		string(entity.UserRoleContentCreator),
	}
)

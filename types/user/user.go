package user

import "logistics-requests/utils"

type UpdateRoleRequest struct {
	Role     string `json:"role" validate:"required,oneof=employee manager"`
	IsActive *bool  `json:"is_active"`
}

func (req *UpdateRoleRequest) Validate() error {
	return utils.ValidateStruct(req)
}

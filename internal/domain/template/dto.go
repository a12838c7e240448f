package template

import "gorm.io/datatypes"

type CreateTemplateDTO struct {
	Title       string         `json:"title" binding:"required,max=200"`
	Description string         `json:"description"`
	Questions   datatypes.JSON `json:"questions"`
}

type UpdateTemplateDTO struct {
	Title       *string         `json:"title" binding:"omitempty,max=200"`
	Description *string         `json:"description"`
	Questions   *datatypes.JSON `json:"questions"`
}

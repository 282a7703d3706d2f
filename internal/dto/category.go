package dto

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryIDParam binds the :id path parameter.
type CategoryIDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

package category

type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type UpdateCategoryRequest struct {
	Title *string `json:"title"`
	Slug  *string `json:"slug"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

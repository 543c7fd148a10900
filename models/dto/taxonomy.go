package dto

// CreateCategoryRequest 创建分类
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,max=20"` // 十六进制颜色，例如 "#4CAF50"
}

// CreateTagRequest 创建标签
// - Slug 可选，缺省时由服务层根据 Name 生成
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Slug string `json:"slug" binding:"omitempty,max=120"`
}

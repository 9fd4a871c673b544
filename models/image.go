package models

// 生成类型
const (
	TypeText2Img = "text2img"
	TypeImg2Img  = "img2img"
	TypeMulti    = "multi"
)

// Image 生成历史记录，对应 images 表
// 记录只增不改，删除时按主键整条移除
type Image struct {
	ID          uint64 `json:"id" db:"id"`
	UserID      uint64 `json:"user_id" db:"user_id"`
	Prompt      string `json:"prompt" db:"prompt"`
	URL         string `json:"url" db:"url"`
	Type        string `json:"type" db:"type"`
	SourceImage string `json:"source_image" db:"source_image"`
	CreatedTime string `json:"created_time" db:"created_time"`
}

// GenerateForm /api/generate 请求参数，image 可以是URL或base64
type GenerateForm struct {
	Prompt string `json:"prompt" binding:"required"`
	Image  string `json:"image"`
}

// GenerateMultiForm /api/generate_multi 请求参数
type GenerateMultiForm struct {
	Prompt string   `json:"prompt" binding:"required"`
	Images []string `json:"images"`
}

// SaveForm /api/save 请求参数
type SaveForm struct {
	Prompt      string `json:"prompt" binding:"required"`
	URL         string `json:"url" binding:"required"`
	Type        string `json:"type"`
	SourceImage string `json:"source_image"`
}

// File: internal/pagination/pagination.go
package pagination

// Meta 分頁中繼資料
// swagger:model pagination.Meta
type Meta struct {
	CurrentPage     int  `json:"current_page" example:"1"`
	ItemsPerPage    int  `json:"items_per_page" example:"10"`
	TotalItems      int  `json:"total_items" example:"15"`
	TotalPages      int  `json:"total_pages" example:"2"`
	HasNextPage     bool `json:"has_next_page" example:"true"`
	HasPreviousPage bool `json:"has_previous_page" example:"false"`
}

// NewMeta 依請求的 page、limit 與總筆數計算中繼資料
// 超出範圍的 page 不會被收斂，中繼資料仍反映請求的頁碼
func NewMeta(page, limit, totalItems int) Meta {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return Meta{
		CurrentPage:     page,
		ItemsPerPage:    limit,
		TotalItems:      totalItems,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// Offset 回傳 1-based 頁碼對應的資料位移
func Offset(page, limit int) int {
	return (page - 1) * limit
}

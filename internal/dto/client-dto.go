package dto

type ClientDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

type ClientDetailDTO struct {
	ClientDTO
	Orders []OrderListItemDTO `json:"orders"`
}

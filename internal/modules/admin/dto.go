package admin

type RejectRequest struct {
	Message string `json:"message" binding:"required"`
}

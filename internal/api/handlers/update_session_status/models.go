package update_session_status

// UpdateSessionStatusRequest HTTP request model
type UpdateSessionStatusRequest struct {
	SessionStatus string `json:"sessionStatus"`
}

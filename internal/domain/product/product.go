package product

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Attachment is the stored filename; empty when nothing was uploaded.
	Attachment string `json:"attachment,omitempty"`
}

// Payload carries the product form fields. The attachment travels as a
// separate multipart part, not inside this struct.
type Payload struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

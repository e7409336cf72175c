package dto

import "time"

// StudentCreateDTO registers a student in the directory.
type StudentCreateDTO struct {
	Name      string `json:"name" binding:"required"`
	DisplayID string `json:"display_id" binding:"required"`
}

type StudentResponseDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	DisplayID string    `json:"display_id"`
	CreatedAt time.Time `json:"created_at"`
}

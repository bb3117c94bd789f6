package dto

// UploadResponse body returned after a successful upload.
type UploadResponse struct {
	Message  string `json:"message"`
	FileURL  string `json:"fileUrl"`
	Filename string `json:"filename"`
}

// DeleteFileRequest body of DELETE /api/upload/delete.
type DeleteFileRequest struct {
	FilePath string `json:"filePath" validate:"required"`
}

package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id,omitempty"` // conversation identity; generated when absent
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

// AskRequest is a retrieval-augmented question against the uploaded documents.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
	K        int    `json:"k,omitempty"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

// SearchRequest is a raw similarity search against the vector store.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	K     int    `json:"k,omitempty"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// SearchResult is one similarity hit: the chunk text plus its payload.
type SearchResult struct {
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// UploadResponse reports the outcome of a multi-file document upload.
type UploadResponse struct {
	UploadedFiles []string `json:"uploaded_files"`
	AddedCount    int      `json:"added_count"`
}

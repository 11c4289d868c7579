package models

type EvaluateResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Action    string `json:"action"`
	Response  string `json:"response"`
}

type ToolchainResponse struct {
	Available bool   `json:"available"`
	Pdftoppm  string `json:"pdftoppm,omitempty"`
	Pdfinfo   string `json:"pdfinfo,omitempty"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Time      string            `json:"time"`
	Toolchain ToolchainResponse `json:"toolchain"`
}

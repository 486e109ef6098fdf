package dto

// SettingsResponse mirrors the persisted settings block. The GitHub token is
// reported only as present/absent, never echoed back.
type SettingsResponse struct {
	Theme    string `json:"theme"`
	HasToken bool   `json:"hasToken"`
	RepoName string `json:"repoName"`
	FileName string `json:"fileName"`
}

// UpdateSettingsRequest patches settings. Nil fields are left untouched; an
// explicit empty string clears the value.
type UpdateSettingsRequest struct {
	Theme       *string `json:"theme"`
	GithubToken *string `json:"githubToken"`
	RepoName    *string `json:"repoName"`
	FileName    *string `json:"fileName"`
}

// SyncResponse reports the outcome of a push or pull against the remote.
type SyncResponse struct {
	Repo    string `json:"repo"`
	File    string `json:"file"`
	Message string `json:"message,omitempty"`
}

// ImportResponse summarizes what a restored snapshot contained.
type ImportResponse struct {
	Products      int `json:"products"`
	InputInvoices int `json:"inputInvoices"`
	SalesInvoices int `json:"salesInvoices"`
}

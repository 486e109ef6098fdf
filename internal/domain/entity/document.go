package entity

// Settings are the user preferences persisted inside the ledger document.
// GithubToken/RepoName/FileName configure the remote sync target.
type Settings struct {
	Theme       string `json:"theme"`
	GithubToken string `json:"githubToken"`
	RepoName    string `json:"repoName"`
	FileName    string `json:"fileName"`
}

// DefaultSettings returns the settings of a freshly created ledger.
func DefaultSettings() Settings {
	return Settings{
		Theme:    "dark",
		FileName: "accounting-data.json",
	}
}

// Document is the whole-document snapshot: the complete serialized state of
// the ledger, treated as one atomic unit for persistence, import/export and
// remote sync. It is always loaded and replaced in full, never merged.
type Document struct {
	Products      []Product `json:"products"`
	InputInvoices []Invoice `json:"inputInvoices"`
	SalesInvoices []Invoice `json:"salesInvoices"`
	Settings      Settings  `json:"settings"`
}

// NewDocument returns an empty ledger document with default settings.
// Collections are non-nil so the serialized form always carries all three
// required keys.
func NewDocument() *Document {
	return &Document{
		Products:      []Product{},
		InputInvoices: []Invoice{},
		SalesInvoices: []Invoice{},
		Settings:      DefaultSettings(),
	}
}

package model

// Matches the JSON schema the classifier prompt asks the LLM to produce.
type ClassifiedDomain struct {
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

type Classification struct {
	Domains       []ClassifiedDomain `json:"domains"`
	PrimaryDomain string             `json:"primary_domain"`
	Summary       string             `json:"summary"`
}

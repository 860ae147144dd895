package snsclasses

// Check is one named validation of the analysis output, with a note
// explaining what was examined.
type Check struct {
	Name   string `json:"name"`
	Status bool   `json:"status"`
	Note   string `json:"note"`
}

package domain

import "encoding/json"

// DecodedDocument is the decoder's view of an uploaded PDF
type DecodedDocument struct {
	RawText   string `json:"raw_text"`
	PageCount int    `json:"page_count"`
}

// Segment is one labeled page block of the annotated output
type Segment struct {
	PageIndex int    `json:"page_index"` // 1-indexed
	PageText  string `json:"page_text"`
}

// ExtractOptions controls how decoded text is rendered
type ExtractOptions struct {
	PageMarkers bool
}

// ExtractionResult is the response body of the extraction endpoint.
// Exactly one of Text or Error is meaningful, selected by Success.
type ExtractionResult struct {
	Success bool
	Text    string
	Error   string
}

// Succeeded builds a successful result
func Succeeded(text string) ExtractionResult {
	return ExtractionResult{Success: true, Text: text}
}

// Failed builds a failed result
func Failed(message string) ExtractionResult {
	return ExtractionResult{Success: false, Error: message}
}

// MarshalJSON emits either {success:true,text} or {success:false,error}
func (r ExtractionResult) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Text    string `json:"text"`
		}{true, r.Text})
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{false, r.Error})
}

// UnmarshalJSON accepts either result shape
func (r *ExtractionResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Success bool   `json:"success"`
		Text    string `json:"text"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = ExtractionResult{Success: raw.Success, Text: raw.Text, Error: raw.Error}
	return nil
}

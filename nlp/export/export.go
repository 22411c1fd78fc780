package export

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/oarkflow/keyterms/nlp/summarization"
)

// Report is the summary of one corpus document.
type Report struct {
	Document string               `json:"document"`
	Keywords []summarization.Term `json:"keywords"`
}

// ToJSON renders r as a single line of compact JSON.
func ToJSON(r *Report) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteJSON writes reports to w as an indented JSON array.
func WriteJSON(w io.Writer, reports []Report) error {
	if reports == nil {
		reports = []Report{}
	}
	b, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// WriteJSONLines writes one compact JSON object per report, each on its
// own line.
func WriteJSONLines(w io.Writer, reports []Report) error {
	for i := range reports {
		line, err := ToJSON(&reports[i])
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

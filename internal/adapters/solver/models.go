package solver

import "github.com/bytedance/sonic"

// Solve modes accepted by the upstream service
const (
	ModeAuto       = "auto"
	ModeEvaluate   = "evaluate"
	ModeDerivative = "derivative"
	ModeIntegral   = "integral"
	ModeSolve      = "solve"
	ModeMatrix     = "matrix"
)

// Request is the solver request body
type Request struct {
	Text    string `json:"text"`
	Mode    string `json:"mode,omitempty"`
	Explain string `json:"explain,omitempty"`
}

// Step is one explanation step; the wire form is either a plain string or a
// {title, content} object
type Step struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// UnmarshalJSON accepts both wire forms
func (s *Step) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := sonic.Unmarshal(b, &str); err != nil {
			return err
		}
		s.Title = ""
		s.Content = str
		return nil
	}
	type plain Step
	var p plain
	if err := sonic.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = Step(p)
	return nil
}

// Pretty carries optional presentation renderings of the result
type Pretty struct {
	EnText  string `json:"en_text,omitempty"`
	ArLatex string `json:"ar_latex,omitempty"`
}

// Response is the solver response body for both outcomes
type Response struct {
	OK           bool    `json:"ok"`
	Result       string  `json:"result,omitempty"`
	Steps        []Step  `json:"steps,omitempty"`
	Pretty       *Pretty `json:"pretty,omitempty"`
	NumericValue string  `json:"numeric_value,omitempty"`
	Error        string  `json:"error,omitempty"`
}

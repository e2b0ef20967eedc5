// components/text/text.go
//
// Text analysis endpoint.
//
//	POST /api/v1/text/analyze   {"text": "...", "maxLength": 100}
//
// Returns the cleaned, capitalised, and truncated forms of text plus word
// and character counts.  maxLength is optional (default 100) and bounded by
// TextSchema.
package text

import (
	"math"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/apidemo/internal/component"
	"github.com/yanizio/apidemo/internal/middleware"
	"github.com/yanizio/apidemo/internal/response"
	"github.com/yanizio/apidemo/internal/textproc"
	"github.com/yanizio/apidemo/internal/validation"
)

// DefaultMaxLength applies when the request omits maxLength.
const DefaultMaxLength = 100

var _ component.Component = (*Comp)(nil)

// Comp serves the text utilities.
type Comp struct {
	log *zap.SugaredLogger
}

// New returns the text component.
func New(log *zap.SugaredLogger) *Comp { return &Comp{log: log} }

func (c *Comp) Name() string   { return "text" }
func (c *Comp) Prefix() string { return "/api/v1/text" }

func (c *Comp) Routes() chi.Router {
	r := chi.NewRouter()
	r.With(
		middleware.JSONBody(c.log),
		middleware.ValidateBody(validation.TextSchema, c.log),
	).Post("/analyze", c.analyze)
	return r
}

// Analysis is the response payload.
type Analysis struct {
	Original       string `json:"original"`
	Cleaned        string `json:"cleaned"`
	Capitalized    string `json:"capitalized"`
	Truncated      string `json:"truncated"`
	WordCount      int    `json:"wordCount"`
	CharacterCount int    `json:"characterCount"`
	MaxLength      int    `json:"maxLength"`
}

// Analyze runs every transformation over text.
func Analyze(text string, maxLength int) Analysis {
	cleaned := textproc.CleanText(text)
	return Analysis{
		Original:       text,
		Cleaned:        cleaned,
		Capitalized:    textproc.CapitalizeWords(cleaned),
		Truncated:      textproc.TruncateText(cleaned, maxLength, textproc.DefaultSuffix),
		WordCount:      textproc.CountWords(text),
		CharacterCount: utf8.RuneCountInString(text),
		MaxLength:      maxLength,
	}
}

func (c *Comp) analyze(w http.ResponseWriter, r *http.Request) {
	body := middleware.BodyFrom(r.Context())
	text, _ := body["text"].(string)

	maxLength := DefaultMaxLength
	if v := body["maxLength"]; v != nil {
		maxLength = int(math.Trunc(validation.ToNumber(v)))
	}

	_ = response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Data:    Analyze(text, maxLength),
	})
}

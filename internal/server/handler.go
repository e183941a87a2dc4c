package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	css "github.com/benbjohnson/cssengine"
	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/htmlnode"
	"github.com/benbjohnson/cssengine/property"
	"github.com/benbjohnson/cssengine/selector"
)

var validate = validator.New()

type ErrorResponse struct {
	BaseResponse
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// Diagnostic is the wire form of a parse error.
type Diagnostic struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
	Fatal   bool   `json:"fatal,omitempty"`
}

type CheckRequest struct {
	Source string `json:"source" validate:"required"`
	Mode   string `json:"mode" validate:"omitempty,oneof=strict forgiving"`
}

type CheckResponse struct {
	BaseResponse
	ID      string       `json:"id"`
	Rules   int          `json:"rules"`
	AtRules int          `json:"at_rules"`
	Errors  []Diagnostic `json:"errors"`
}

type FormatRequest struct {
	Source string `json:"source" validate:"required"`
	Mode   string `json:"mode" validate:"omitempty,oneof=strict forgiving"`
}

type FormatResponse struct {
	BaseResponse
	ID     string       `json:"id"`
	Output string       `json:"output"`
	Errors []Diagnostic `json:"errors"`
}

type SelectRequest struct {
	HTML     string `json:"html" validate:"required"`
	Selector string `json:"selector" validate:"required"`
	Mode     string `json:"mode" validate:"omitempty,oneof=strict forgiving"`
}

type SelectResponse struct {
	BaseResponse
	ID       string       `json:"id"`
	Selector string       `json:"selector"`
	Matches  []string     `json:"matches"`
	Errors   []Diagnostic `json:"errors"`
}

type ApplyRequest struct {
	HTML   string `json:"html" validate:"required"`
	Source string `json:"source"`
	Mode   string `json:"mode" validate:"omitempty,oneof=strict forgiving"`
}

// AppliedElement is the computed style of one element.
type AppliedElement struct {
	Element string            `json:"element"`
	Rules   []string          `json:"rules"`
	Style   map[string]string `json:"style"`
}

type ApplyResponse struct {
	BaseResponse
	ID       string           `json:"id"`
	Elements []AppliedElement `json:"elements"`
	Errors   []Diagnostic     `json:"errors"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp := CheckResponse{ID: uuid.NewString(), Errors: []Diagnostic{}}
	sheet, err := css.Compile(req.Source, s.mode(req.Mode))
	if err != nil {
		resp.Errors = append(resp.Errors, diagnostic(err))
		respondWithJSON(w, http.StatusOK, resp)
		return
	}

	resp.Rules, resp.AtRules = len(sheet.Rules), len(sheet.AtRules)
	resp.Errors = append(resp.Errors, diagnostics(sheet.Errors)...)
	resp.Ok = len(resp.Errors) == 0
	respondWithJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp := FormatResponse{ID: uuid.NewString()}
	out, errs, err := css.Format(req.Source, s.mode(req.Mode))
	resp.Errors = diagnostics(errs)
	if err != nil {
		resp.Errors = append(resp.Errors, diagnostic(err))
		respondWithJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	resp.Ok, resp.Output = true, out
	respondWithJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp := SelectResponse{ID: uuid.NewString(), Matches: []string{}}
	l, errs, err := selector.Parse(req.Selector, s.mode(req.Mode))
	resp.Errors = diagnostics(errs)
	if err != nil {
		resp.Errors = append(resp.Errors, diagnostic(err))
		respondWithJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	resp.Selector = l.String()

	root, err := htmlnode.Parse(strings.NewReader(req.HTML))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid html")
		return
	}
	for _, e := range htmlnode.Select(root, l) {
		resp.Matches = append(resp.Matches, e.String())
	}

	resp.Ok = true
	respondWithJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if !s.decode(w, r, &req) {
		return
	}
	mode := s.mode(req.Mode)

	root, err := htmlnode.Parse(strings.NewReader(req.HTML))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid html")
		return
	}

	// Embedded sheets come first so the request's source wins ties.
	src := strings.Join(append(htmlnode.StyleSheets(root), req.Source), "\n")

	resp := ApplyResponse{ID: uuid.NewString(), Elements: []AppliedElement{}}
	sheet, err := css.Compile(src, mode)
	if err != nil {
		resp.Errors = []Diagnostic{diagnostic(err)}
		respondWithJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	resp.Errors = diagnostics(sheet.Errors)

	computed, errs, err := htmlnode.Apply(root, sheet, mode)
	resp.Errors = append(resp.Errors, diagnostics(errs)...)
	if err != nil {
		resp.Errors = append(resp.Errors, diagnostic(err))
		respondWithJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	for _, c := range computed {
		elem := AppliedElement{Element: c.Element.String(), Rules: []string{}, Style: map[string]string{}}
		for _, rule := range c.Rules {
			elem.Rules = append(elem.Rules, rule.Selectors.String())
		}
		c.Style.Each(func(name string, v property.Value) {
			elem.Style[name] = v.String()
		})
		resp.Elements = append(resp.Elements, elem)
	}

	resp.Ok = true
	respondWithJSON(w, http.StatusOK, resp)
}

// decode reads and validates a JSON request body into v. On failure it
// writes the error response and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBody)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := validate.Struct(v); err != nil {
		var details []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details = append(details, fe.Field()+": "+fe.Tag())
			}
		}
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: details})
		return false
	}
	return true
}

// mode returns the selector mode named by the request or the configured
// default.
func (s *Server) mode(name string) selector.Mode {
	switch name {
	case "strict":
		return selector.Strict
	case "forgiving":
		return selector.Forgiving
	}
	return s.cfg.SelectorMode()
}

func diagnostics(a diag.ErrorList) []Diagnostic {
	out := make([]Diagnostic, 0, len(a))
	for _, e := range a {
		out = append(out, diagnostic(e))
	}
	return out
}

func diagnostic(err error) Diagnostic {
	var e *diag.Error
	if !errors.As(err, &e) {
		return Diagnostic{Message: err.Error(), Fatal: true}
	}
	return Diagnostic{
		Kind:    e.Kind.String(),
		Line:    e.Pos.Line,
		Column:  e.Pos.Column,
		Message: e.Message(),
		Fatal:   e.Kind.Fatal(),
	}
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

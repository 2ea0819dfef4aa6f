package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"

	"github.com/memorise/nlpdemo/internal/languages"
	"github.com/memorise/nlpdemo/internal/normalize"
	"github.com/memorise/nlpdemo/internal/resolver"
)

type textRequest struct {
	Text string `json:"text"`
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

type apiError struct {
	Error string `json:"error"`
}

func encodeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

func renderError(w http.ResponseWriter, err error, status int) {
	log.WithError(err).Error("request failed")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiError{Error: err.Error()})
}

// LanguagesHandler lists the target language names offered by the dropdown.
func LanguagesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		encodeJSON(w, map[string][]string{"languages": languages.Names()})
	}
}

// ClassifyHandler forwards the text to the subject-term classification
// service and returns the normalized result.
func ClassifyHandler(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		interactionLog(r, "classify", req.Text).Debug("forwarding to classification service")

		resp, err := state.Semtag.Classify(r.Context(), req.Text)
		if err != nil {
			renderError(w, err, http.StatusBadGateway)
			return
		}
		result, err := normalize.Normalize(resp)
		if err != nil {
			renderError(w, err, http.StatusBadGateway)
			return
		}
		encodeJSON(w, result)
	}
}

// ExtractEntitiesHandler forwards the text to the named-entity extraction
// service and returns the normalized result.
func ExtractEntitiesHandler(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		interactionLog(r, "ner", req.Text).Debug("forwarding to entity extraction service")

		resp, err := state.NER.ExtractEntities(r.Context(), req.Text)
		if err != nil {
			renderError(w, err, http.StatusBadGateway)
			return
		}
		result, err := normalize.Normalize(resp)
		if err != nil {
			renderError(w, err, http.StatusBadGateway)
			return
		}
		encodeJSON(w, result)
	}
}

// TranslateHandler resolves the language pair and forwards the text to the
// translation service. Input whose language cannot be detected yields an
// empty text result without calling the translate endpoint.
func TranslateHandler(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		interactionLog(r, "translate", req.Text).
			WithField("target", req.TargetLanguage).
			Debug("resolving language pair")

		srcLang, tgtLang, err := state.Resolver.Resolve(r.Context(), req.Text, req.TargetLanguage)
		if errors.Is(err, resolver.ErrUndetectable) {
			encodeJSON(w, &normalize.Result{Kind: normalize.KindText, Text: ""})
			return
		}
		if err != nil {
			renderError(w, err, http.StatusBadGateway)
			return
		}

		resp, err := state.MT.Translate(r.Context(), req.Text, srcLang, tgtLang)
		if err != nil {
			renderError(w, err, http.StatusBadGateway)
			return
		}
		result, err := normalize.Normalize(resp)
		if err != nil {
			renderError(w, err, http.StatusBadGateway)
			return
		}
		encodeJSON(w, result)
	}
}

// UploadHandler reads an uploaded plain-text file and returns its full
// content for the page to write into the text box. The content must be valid
// UTF-8 and is NFC-normalized before use.
func UploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		if !utf8.Valid(data) {
			renderError(w, errors.New("uploaded file is not valid UTF-8 text"), http.StatusBadRequest)
			return
		}

		log.WithFields(logrus.Fields{
			"file":  header.Filename,
			"bytes": len(data),
		}).Info("text file uploaded")

		encodeJSON(w, map[string]string{"text": string(norm.NFC.Bytes(data))})
	}
}

func interactionLog(r *http.Request, op, text string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"op":             op,
		"interaction_id": uuid.New().String(),
		"chars":          len(text),
		"remote":         r.RemoteAddr,
	})
}

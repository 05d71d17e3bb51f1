package voice_post

import (
	"net/http"

	"service/internal/service/voice"
	"service/pkg/logger"
	"service/pkg/twiml"
)

const apologyLine = "We are unable to process your request right now. Please try again."

type Handler struct {
	log     handlerLogger
	machine DialogMachine
}

func New(log handlerLogger, machine DialogMachine) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		machine: machine,
	}
}

// ServeHTTP is the telephony provider's webhook. Every answer is TwiML with
// status 200; when a turn cannot be served the caller hears an apology and
// lands back on the menu with their session intact.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	input := voice.Input{
		CallID: r.PostFormValue("CallSid"),
		Stage:  voice.ParseStage(r.URL.Query().Get("stage")),
		Digits: r.PostFormValue("Digits"),
		Speech: r.PostFormValue("SpeechResult"),
	}

	directives, err := h.machine.Turn(r.Context(), input)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("call_sid", input.CallID),
			logger.NewField("stage", string(input.Stage)),
		).Error("voice turn failed")

		directives = []voice.Directive{
			voice.Say{Text: apologyLine},
			voice.Redirect{Next: voice.StageMenu},
		}
	}

	body, err := renderTwiML(r, directives)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render twiml response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	_, err = w.Write(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write twiml response")
	}
}

func renderTwiML(r *http.Request, directives []voice.Directive) ([]byte, error) {
	response := twiml.NewResponse()
	for _, d := range directives {
		switch v := d.(type) {
		case voice.Say:
			response.Say(v.Text)
		case voice.Gather:
			response.Gather(actionURL(r, v.Next), v.Text, v.NumDigits, v.TimeoutSeconds)
		case voice.Redirect:
			response.Redirect(actionURL(r, v.Next))
		case voice.Hangup:
			response.Hangup()
		}
	}
	return response.Render()
}

// actionURL rebuilds the webhook's own URL with the stage parameter swapped,
// so the next turn posts back here. Relative URLs keep it proxy-agnostic.
func actionURL(r *http.Request, stage voice.Stage) string {
	u := *r.URL
	query := u.Query()
	query.Set("stage", string(stage))
	u.RawQuery = query.Encode()
	return u.String()
}

// Package twiml renders the small subset of TwiML verbs the voice webhook
// needs: speak a prompt, gather the next input, redirect to a stage, hang up.
package twiml

import (
	"encoding/xml"
	"fmt"
)

const (
	InputDTMFAndSpeech = "dtmf speech"
	MethodPost         = "POST"
)

type Response struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []interface{}
}

type Say struct {
	XMLName xml.Name `xml:"Say"`
	Text    string   `xml:",chardata"`
}

type Gather struct {
	XMLName   xml.Name `xml:"Gather"`
	Action    string   `xml:"action,attr"`
	Method    string   `xml:"method,attr"`
	Input     string   `xml:"input,attr"`
	NumDigits int      `xml:"numDigits,attr,omitempty"`
	Timeout   int      `xml:"timeout,attr,omitempty"`
	Say       *Say
}

type Redirect struct {
	XMLName xml.Name `xml:"Redirect"`
	Method  string   `xml:"method,attr"`
	URL     string   `xml:",chardata"`
}

type Hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

func NewResponse() *Response {
	return &Response{}
}

func (r *Response) Say(text string) *Response {
	r.Verbs = append(r.Verbs, Say{Text: text})
	return r
}

// Gather appends a gather verb prompting with text and posting the caller's
// next input to action. numDigits 0 leaves the digit count open-ended.
func (r *Response) Gather(action, text string, numDigits, timeoutSeconds int) *Response {
	r.Verbs = append(r.Verbs, Gather{
		Action:    action,
		Method:    MethodPost,
		Input:     InputDTMFAndSpeech,
		NumDigits: numDigits,
		Timeout:   timeoutSeconds,
		Say:       &Say{Text: text},
	})
	return r
}

func (r *Response) Redirect(url string) *Response {
	r.Verbs = append(r.Verbs, Redirect{Method: MethodPost, URL: url})
	return r
}

func (r *Response) Hangup() *Response {
	r.Verbs = append(r.Verbs, Hangup{})
	return r
}

func (r *Response) Render() ([]byte, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal twiml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

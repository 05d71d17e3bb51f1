package voice

// Directive is one step of the telephony response for a dialog turn. The
// webhook handler renders directives to TwiML in order; the machine itself
// never touches the wire format.
type Directive interface {
	directive()
}

// Say speaks one line to the caller.
type Say struct {
	Text string
}

// Gather speaks a prompt and collects keypad or speech input, posting it to
// the turn identified by Next.
type Gather struct {
	Next Stage
	Text string

	// NumDigits of zero lets the caller enter a number of any length,
	// terminated by the gather timeout.
	NumDigits      int
	TimeoutSeconds int
}

// Redirect re-enters the dialog at the given stage without waiting for input.
// A Redirect after a Gather is the timeout path.
type Redirect struct {
	Next Stage
}

// Hangup ends the call.
type Hangup struct{}

func (Say) directive()      {}
func (Gather) directive()   {}
func (Redirect) directive() {}
func (Hangup) directive()   {}

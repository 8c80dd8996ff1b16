package authflow

// Method selects how a sign-in attempt authenticates.
type Method string

const (
	MethodPassword  Method = "password"
	MethodMagicLink Method = "magic_link"
)

// Operation identifies one submittable action on a form. Each operation has
// its own in-flight flag so an outstanding magic-link request does not make
// the OAuth button look busy, even though only one operation may run at a
// time.
type Operation string

const (
	OperationPassword  Operation = "password"
	OperationMagicLink Operation = "magic_link"
	OperationOAuth     Operation = "oauth"
	OperationSignUp    Operation = "sign_up"
)

// FormState carries the raw field values of one form submission. Password
// fields pass through to the provider call and are never logged or echoed
// back.
type FormState struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// MessageKind classifies a surfaced message.
type MessageKind int

const (
	// MessageNone means nothing to display.
	MessageNone MessageKind = iota
	// MessageWarning flags local validation problems the user can fix
	// before anything is sent.
	MessageWarning
	// MessageError flags provider-reported or transport failures.
	MessageError
	// MessageSuccess confirms a completed operation.
	MessageSuccess
)

func (k MessageKind) String() string {
	switch k {
	case MessageWarning:
		return "warning"
	case MessageError:
		return "error"
	case MessageSuccess:
		return "success"
	default:
		return "none"
	}
}

// Message is the user-visible outcome of a submission attempt.
type Message struct {
	Kind MessageKind
	Text string
}

// IsZero reports whether there is no message to display.
func (m Message) IsZero() bool {
	return m.Kind == MessageNone
}

func warning(text string) Message {
	return Message{Kind: MessageWarning, Text: text}
}

func errorMessage(text string) Message {
	return Message{Kind: MessageError, Text: text}
}

func success(text string) Message {
	return Message{Kind: MessageSuccess, Text: text}
}

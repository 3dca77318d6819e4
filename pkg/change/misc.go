package change

type (
	// TagDatabase records a named tag in the execution engine's bookkeeping.
	TagDatabase struct {
		Tag string `yaml:"tag"`
	}

	// Stop halts a run with a message; used to force manual intervention
	// between change sets.
	Stop struct {
		Message string `yaml:"message,omitempty"`
	}

	// Empty is a no-op change.
	Empty struct{}

	// Output writes a message to the execution engine's output target.
	Output struct {
		Message string `yaml:"message,omitempty"`
		Target  string `yaml:"target,omitempty"`
	}
)

func (c *TagDatabase) Name() string { return "tagDatabase" }

func (c *Stop) Name() string { return "stop" }

// SetMessage sets the message from the directive's positional argument.
func (c *Stop) SetMessage(msg string) { c.Message = msg }

func (c *Empty) Name() string { return "empty" }

func (c *Output) Name() string { return "output" }

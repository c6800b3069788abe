package quiz

// DefaultOptionCount is the number of options in a multiple choice question.
const DefaultOptionCount = 4

// Config controls the behavior of the Generator.
type Config struct {
	// OptionCount is the size of every multiple choice option set,
	// correct answer included. Values below 2 fall back to the default.
	OptionCount int

	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline. Nil selects DefaultValidators.
	Validators []Validator
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		OptionCount: DefaultOptionCount,
		Validators:  DefaultValidators(DefaultOptionCount),
	}
}

// DefaultValidators returns the standard chain for option sets of size n.
func DefaultValidators(n int) []Validator {
	return []Validator{
		&StructuralValidator{},
		&ChoiceValidator{Size: n},
	}
}

func (c Config) normalized() Config {
	if c.OptionCount < 2 {
		c.OptionCount = DefaultOptionCount
	}
	if c.Validators == nil {
		c.Validators = DefaultValidators(c.OptionCount)
	}
	return c
}

package formdoc

import "fmt"

// Option configures Parse, Decode, Serialize and Encode. Options that do not
// apply to an operation are ignored by it.
type Option func(o *options) error

type options struct {
	prefix      string
	indent      string
	omitHeader  bool
	maxDepth    int
	skipUnknown bool
}

const defaultMaxDepth = 256

func buildOptions(opts []Option) (options, error) {
	o := options{
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Indent makes the encoder put each element on its own line, starting with
// prefix and indented by one copy of indent per nesting level.
func Indent(prefix, indent string) Option {
	return func(o *options) error {
		o.prefix, o.indent = prefix, indent
		return nil
	}
}

// OmitHeader suppresses the <?xml ...?> declaration.
func OmitHeader() Option {
	return func(o *options) error {
		o.omitHeader = true
		return nil
	}
}

// MaxDepth limits element nesting accepted by the decoder.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("formdoc: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// SkipUnknown makes the decoder ignore elements that the schema does not
// declare instead of failing with ErrSchemaViolation.
func SkipUnknown() Option {
	return func(o *options) error {
		o.skipUnknown = true
		return nil
	}
}

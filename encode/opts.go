package encode

type Format int

const (
	// StructuredFormat is the JSON dump of types and values.
	StructuredFormat Format = iota
	// YAMLFormat renders the plain data of the document as YAML.
	YAMLFormat
)

type EncodeOption func(*encOpts)

type encOpts struct {
	format Format
	colors *Colors
}

func defaultOpts() *encOpts {
	return &encOpts{format: StructuredFormat}
}

func EncodeFormat(f Format) EncodeOption {
	return func(o *encOpts) {
		o.format = f
	}
}

// EncodeColors turns on ANSI colorization of the structured dump.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) {
		o.colors = c
	}
}

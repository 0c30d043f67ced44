package tomldoc

import "io"

// Encoder writes TOML documents to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the TOML encoding of d to the stream.
func (e *Encoder) Encode(d *Document) error {
	return d.WriteTo(e.w)
}

// Marshal returns the TOML encoding of d.
func Marshal(d *Document) []byte {
	return []byte(d.String())
}

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

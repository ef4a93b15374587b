// Package command models the metadata attached to a registered SCPI
// command: its documentation and its optional query/write codecs.
package command

import "fmt"

// Decoder translates the raw text an instrument returns for a query into
// a typed value.
type Decoder func(raw string) (interface{}, error)

// Encoder translates a typed value into the argument text sent with a
// write.
type Encoder func(value interface{}) (string, error)

// Command describes what can be done with one registered command.
//
// Queryable and Writable are the capability flags; the function fields
// refine them. A queryable command with a nil Get has a query form whose
// result carries no meaningful value (e.g. *OPC used as a barrier). A
// writable command with a nil Set takes no argument (e.g. *RST).
type Command struct {
	Doc       string
	Queryable bool
	Writable  bool
	Get       Decoder
	Set       Encoder
}

// CanQuery reports whether the command has a query form.
func (c *Command) CanQuery() bool {
	return c.Queryable
}

// CanWrite reports whether the command has a write form.
func (c *Command) CanWrite() bool {
	return c.Writable
}

// DecodeResponse decodes the raw result of a query. For queryable
// commands without a decoder the raw text is discarded and a nil value
// returned.
func (c *Command) DecodeResponse(raw string) (interface{}, error) {
	if !c.Queryable {
		return nil, fmt.Errorf("command is not queryable")
	}
	if c.Get == nil {
		return nil, nil
	}
	return c.Get(raw)
}

// EncodeArgument encodes the argument for a write. For writable commands
// without an encoder the value is ignored and an empty argument returned.
func (c *Command) EncodeArgument(value interface{}) (string, error) {
	if !c.Writable {
		return "", fmt.Errorf("command is not writable")
	}
	if c.Set == nil {
		return "", nil
	}
	return c.Set(value)
}

package command

// Constructors for the common command shapes. The RO/WO suffixes mean
// query-only and write-only respectively.

// Func builds an action command: writable with no argument, not
// queryable (*RST, *CLS).
func Func(doc string) *Command {
	return &Command{Doc: doc, Writable: true}
}

// Int builds a read/write integer command.
func Int(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Writable: true, Get: decodeInt, Set: encodeAny}
}

// IntRO builds a query-only integer command.
func IntRO(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Get: decodeInt}
}

// IntWO builds a write-only integer command.
func IntWO(doc string) *Command {
	return &Command{Doc: doc, Writable: true, Set: encodeAny}
}

// Float builds a read/write float command.
func Float(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Writable: true, Get: decodeFloat, Set: encodeAny}
}

// FloatRO builds a query-only float command.
func FloatRO(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Get: decodeFloat}
}

// FloatWO builds a write-only float command.
func FloatWO(doc string) *Command {
	return &Command{Doc: doc, Writable: true, Set: encodeAny}
}

// Str builds a read/write string command.
func Str(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Writable: true, Get: decodeStr, Set: encodeAny}
}

// StrRO builds a query-only string command.
func StrRO(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Get: decodeStr}
}

// StrWO builds a write-only string command.
func StrWO(doc string) *Command {
	return &Command{Doc: doc, Writable: true, Set: encodeAny}
}

// IntArrayRO builds a query-only comma-separated integer array command.
func IntArrayRO(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Get: decodeIntArray}
}

// FloatArrayRO builds a query-only comma-separated float array command.
func FloatArrayRO(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Get: decodeFloatArray}
}

// StrArray builds a read/write comma-separated string array command.
func StrArray(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Writable: true, Get: decodeStrArray, Set: encodeStrArray}
}

// StrArrayRO builds a query-only comma-separated string array command.
func StrArrayRO(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Get: decodeStrArray}
}

// OnOff builds a read/write boolean command using the ON/OFF spellings.
func OnOff(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Writable: true, Get: decodeOnOff, Set: encodeOnOff}
}

// OnOffRO builds a query-only ON/OFF command.
func OnOffRO(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Get: decodeOnOff}
}

// OnOffWO builds a write-only ON/OFF command.
func OnOffWO(doc string) *Command {
	return &Command{Doc: doc, Writable: true, Set: encodeOnOff}
}

// Bool is an alias for OnOff.
func Bool(doc string) *Command { return OnOff(doc) }

// BoolRO is an alias for OnOffRO.
func BoolRO(doc string) *Command { return OnOffRO(doc) }

// BoolWO is an alias for OnOffWO.
func BoolWO(doc string) *Command { return OnOffWO(doc) }

// IDN builds the identification query command.
func IDN() *Command {
	return &Command{Doc: "identification query", Queryable: true, Get: DecodeIDN}
}

// Err builds an error-queue query command.
func Err(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Get: decodeErr}
}

// ErrArray builds a command decoding a whole error-queue dump.
func ErrArray(doc string) *Command {
	return &Command{Doc: doc, Queryable: true, Get: decodeErrArray}
}

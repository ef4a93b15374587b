package registry

import "github.com/scpi-lang/scpi/runtime/command"

// NewIEEE4882 creates a registry pre-loaded with the IEEE 488.2 common
// commands every compliant instrument implements, plus the standard
// error-queue query. Callers extend the returned registry with their
// instrument-specific table.
func NewIEEE4882() *Registry {
	r := New()

	// The expressions below are static and known to compile.
	_ = r.SetAll([]Pair{
		{"*CLS", command.Func("clear status")},
		{"*ESE", command.Int("standard event status enable register")},
		{"*ESR", command.IntRO("standard event status register")},
		{"*IDN", command.IDN()},
		{"*OPC", opcCommand()},
		{"*OPT", command.IntRO("return model number of any installed options")},
		{"*RCL", command.IntWO("return to user saved setup")},
		{"*RST", command.Func("reset")},
		{"*SAV", command.IntWO("save the preset setup as the user-saved setup")},
		{"*SRE", command.IntWO("service request enable register")},
		{"*STB", command.StrRO("status byte register")},
		{"*TRG", command.Func("bus trigger")},
		{"*TST", tstCommand()},
		{"*WAI", command.Func("wait to continue")},
		{"SYSTem:ERRor[:NEXT]", command.Err("return and clear oldest system error")},
	})

	return r
}

// opcCommand models *OPC: queryable as an int and also writable without
// an argument (the write form arms the operation-complete flag).
func opcCommand() *command.Command {
	c := command.IntRO("operation complete")
	c.Writable = true
	return c
}

// tstCommand models *TST?: the instrument answers 0 for pass, so the
// decoded value is the inverted ON/OFF reading.
func tstCommand() *command.Command {
	c := command.OnOffRO("self-test query")
	inner := c.Get
	c.Get = func(raw string) (interface{}, error) {
		v, err := inner(raw)
		if err != nil {
			return nil, err
		}
		return !v.(bool), nil
	}
	return c
}

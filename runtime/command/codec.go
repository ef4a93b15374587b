package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Identification is the decoded result of an *IDN? query.
type Identification struct {
	Manufacturer string
	Model        string
	Serial       string
	Version      string
}

// SystemError is one decoded entry of the instrument error queue, as
// returned by SYSTem:ERRor[:NEXT]?.
type SystemError struct {
	Code int
	Desc string
}

// DecodeIDN decodes the four comma-separated fields of an *IDN? response.
func DecodeIDN(raw string) (interface{}, error) {
	parts := strings.SplitN(raw, ",", 4)
	if len(parts) != 4 {
		return nil, fmt.Errorf("cannot decode IDN value %q: want 4 fields, got %d", raw, len(parts))
	}
	return &Identification{
		Manufacturer: strings.TrimSpace(parts[0]),
		Model:        strings.TrimSpace(parts[1]),
		Serial:       strings.TrimSpace(parts[2]),
		Version:      strings.TrimSpace(parts[3]),
	}, nil
}

// decodeErr decodes a single `<code>,"<description>"` error-queue entry.
func decodeErr(raw string) (interface{}, error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("cannot decode error value %q", raw)
	}
	code, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("cannot decode error code in %q: %w", raw, err)
	}
	return &SystemError{Code: code, Desc: unquote(strings.TrimSpace(parts[1]))}, nil
}

// decodeErrArray decodes a flat `code,"desc",code,"desc",...` list,
// skipping the terminating `0,"No error"` entries.
func decodeErrArray(raw string) (interface{}, error) {
	parts := strings.Split(raw, ",")
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("cannot decode error array %q: odd field count", raw)
	}
	result := []*SystemError{}
	for i := 0; i < len(parts); i += 2 {
		code, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, fmt.Errorf("cannot decode error code in %q: %w", raw, err)
		}
		if code == 0 {
			continue
		}
		result = append(result, &SystemError{Code: code, Desc: unquote(strings.TrimSpace(parts[i+1]))})
	}
	return result, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// decodeOnOff maps the 1/ON and 0/OFF response spellings to a bool.
func decodeOnOff(raw string) (interface{}, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "1", "ON":
		return true, nil
	case "0", "OFF":
		return false, nil
	}
	return nil, fmt.Errorf("cannot decode OnOff value %q", raw)
}

// encodeOnOff accepts bool, 0/1 and the on/off spellings, producing the
// canonical ON/OFF argument.
func encodeOnOff(value interface{}) (string, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return "ON", nil
		}
		return "OFF", nil
	case int:
		switch v {
		case 0:
			return "OFF", nil
		case 1:
			return "ON", nil
		}
	case string:
		switch strings.ToUpper(v) {
		case "ON", "1":
			return "ON", nil
		case "OFF", "0":
			return "OFF", nil
		}
	}
	return "", fmt.Errorf("cannot encode OnOff value %v", value)
}

func decodeInt(raw string) (interface{}, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("cannot decode int value %q: %w", raw, err)
	}
	return v, nil
}

func decodeFloat(raw string) (interface{}, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, fmt.Errorf("cannot decode float value %q: %w", raw, err)
	}
	return v, nil
}

func decodeStr(raw string) (interface{}, error) {
	return raw, nil
}

func decodeIntArray(raw string) (interface{}, error) {
	fields := splitArray(raw)
	result := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("cannot decode int array %q: %w", raw, err)
		}
		result = append(result, v)
	}
	return result, nil
}

func decodeFloatArray(raw string) (interface{}, error) {
	fields := splitArray(raw)
	result := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot decode float array %q: %w", raw, err)
		}
		result = append(result, v)
	}
	return result, nil
}

func decodeStrArray(raw string) (interface{}, error) {
	return splitArray(raw), nil
}

func splitArray(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	fields := strings.Split(raw, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// encodeAny renders any scalar with its default formatting.
func encodeAny(value interface{}) (string, error) {
	return fmt.Sprintf("%v", value), nil
}

func encodeStrArray(value interface{}) (string, error) {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, ","), nil
	case string:
		return v, nil
	}
	return "", fmt.Errorf("cannot encode string array value %v", value)
}

package run

import (
	"fmt"
	"math"
	"time"
)

// OptionsFromMap builds Options from a loosely typed mapping, such as a
// decoded YAML or JSON document. Unknown keys and values of the wrong type
// are rejected with an error wrapping ErrInvalidOptions.
//
// Recognized keys: description, success (list of exit codes or the string
// "any"), flush_before_subprocess, max_output_size, retry,
// retry_initial_sleep_seconds, retry_backoff, env_overrides, cwd, encoding,
// errors. Print callbacks cannot be expressed in data and are set on the
// returned Options directly.
func OptionsFromMap(m map[string]any) (Options, error) {
	var o Options
	for key, val := range m {
		var err error
		switch key {
		case "description":
			o.Description, err = stringValue(key, val)
		case "success":
			o.Success, err = successValue(val)
		case "flush_before_subprocess":
			var flush bool
			flush, err = boolValue(key, val)
			o.DisableFlush = !flush
		case "max_output_size":
			o.MaxOutputSize, err = intValue(key, val)
		case "retry":
			o.Retries, err = intValue(key, val)
		case "retry_initial_sleep_seconds":
			var secs float64
			secs, err = floatValue(key, val)
			o.RetryInitialSleep = time.Duration(secs * float64(time.Second))
		case "retry_backoff":
			o.RetryBackoff, err = floatValue(key, val)
		case "env_overrides":
			o.EnvOverrides, err = envValue(val)
		case "cwd":
			o.Dir, err = stringValue(key, val)
		case "encoding":
			o.Encoding, err = stringValue(key, val)
		case "errors":
			o.EncodingErrors, err = stringValue(key, val)
		default:
			return o, fmt.Errorf("%w: unknown option %q", ErrInvalidOptions, key)
		}
		if err != nil {
			return o, err
		}
	}
	if err := o.Validate(); err != nil {
		return o, err
	}
	return o, nil
}

// ForceOptions returns a copy of opts with every entry of forced set,
// failing if the caller already supplied one of the forced keys. It is the
// helper for wrappers that must pin specific options.
func ForceOptions(opts, forced map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(opts)+len(forced))
	for k, v := range opts {
		out[k] = v
	}
	for k, v := range forced {
		if _, ok := out[k]; ok {
			return nil, fmt.Errorf("%w: option %q may not be overridden", ErrInvalidOptions, k)
		}
		out[k] = v
	}
	return out, nil
}

// FillDefaults returns a copy of opts where each entry of defaults is added
// only when the caller omitted that key.
func FillDefaults(opts, defaults map[string]any) map[string]any {
	out := make(map[string]any, len(opts)+len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range opts {
		out[k] = v
	}
	return out
}

func stringValue(key string, val any) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: option %q must be a string, got %T", ErrInvalidOptions, key, val)
	}
	return s, nil
}

func boolValue(key string, val any) (bool, error) {
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("%w: option %q must be a bool, got %T", ErrInvalidOptions, key, val)
	}
	return b, nil
}

// intValue accepts the integer shapes produced by the yaml and json
// decoders, including float64 values that are exactly integral.
func intValue(key string, val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, fmt.Errorf("%w: option %q is out of range", ErrInvalidOptions, key)
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: option %q must be an integer, got %g", ErrInvalidOptions, key, v)
		}
		return int(v), nil
	}
	return 0, fmt.Errorf("%w: option %q must be an integer, got %T", ErrInvalidOptions, key, val)
}

func floatValue(key string, val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: option %q must be a number, got %T", ErrInvalidOptions, key, val)
}

func successValue(val any) (SuccessSet, error) {
	switch v := val.(type) {
	case string:
		if v == "any" {
			return AnyExitCode(), nil
		}
		return SuccessSet{}, fmt.Errorf("%w: option \"success\" must be a list of exit codes or \"any\", got %q", ErrInvalidOptions, v)
	case []any:
		codes := make([]int, 0, len(v))
		for _, item := range v {
			code, err := intValue("success", item)
			if err != nil {
				return SuccessSet{}, err
			}
			codes = append(codes, code)
		}
		return ExitCodes(codes...), nil
	case []int:
		return ExitCodes(v...), nil
	}
	return SuccessSet{}, fmt.Errorf("%w: option \"success\" must be a list of exit codes or \"any\", got %T", ErrInvalidOptions, val)
}

func envValue(val any) (map[string]string, error) {
	switch v := val.(type) {
	case map[string]string:
		return v, nil
	case map[string]any:
		env := make(map[string]string, len(v))
		for k, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: option \"env_overrides\" values must be strings, got %T for %q", ErrInvalidOptions, item, k)
			}
			env[k] = s
		}
		return env, nil
	}
	return nil, fmt.Errorf("%w: option \"env_overrides\" must be a string map, got %T", ErrInvalidOptions, val)
}

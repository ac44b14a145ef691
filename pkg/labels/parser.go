package labels

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

func supportedExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") ||
		strings.EqualFold(ext, "yml") ||
		strings.EqualFold(ext, "json")
}

func parseCatalog(ext string, content []byte) (map[string]string, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")

	var raw map[string]any
	switch ext {
	case "yaml", "yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrParse, err)
		}
	case "json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrParse, ext)
	}

	out := make(map[string]string)
	if err := flatten("", raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// flatten walks nested documents and joins the path with dots. Scalar leaves
// are coerced to strings; list values have no label meaning and fail.
func flatten(prefix string, node map[string]any, out map[string]string) error {
	for key, val := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := val.(type) {
		case map[string]any:
			if err := flatten(full, v, out); err != nil {
				return err
			}
		case map[any]any:
			converted := make(map[string]any, len(v))
			for k, item := range v {
				ks, ok := k.(string)
				if !ok {
					return fmt.Errorf("%w: non-string key under %q", ErrParse, full)
				}
				converted[ks] = item
			}
			if err := flatten(full, converted, out); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("%w: list value at %q", ErrParse, full)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprintf("%v", v)
		}
	}
	return nil
}

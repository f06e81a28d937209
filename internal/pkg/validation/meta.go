package validation

import "fmt"

// Bounds for client-supplied upload metadata. The mapping is free-form
// but must stay small enough to live inside a single record-store item.
var (
	MetaMaxKeys      = 64
	MetaMaxDepth     = 4
	MetaMaxStringLen = 2048
	MetaMaxListLen   = 64
)

// ValidateMeta checks a client-supplied metadata mapping against the
// size and depth bounds. Allowed values are strings, numbers, booleans,
// null and nested mappings/sequences of the same.
func ValidateMeta(meta map[string]interface{}) error {
	if meta == nil {
		return nil
	}
	if len(meta) > MetaMaxKeys {
		return fmt.Errorf("meta has too many keys (max %d)", MetaMaxKeys)
	}
	for key, value := range meta {
		if len(key) > MetaMaxStringLen {
			return fmt.Errorf("meta key too long (max %d)", MetaMaxStringLen)
		}
		if err := validateMetaValue(value, 1); err != nil {
			return fmt.Errorf("meta key %q: %w", key, err)
		}
	}
	return nil
}

// validateMetaValue checks one value at the given nesting depth
func validateMetaValue(value interface{}, depth int) error {
	if depth > MetaMaxDepth {
		return fmt.Errorf("nesting too deep (max %d)", MetaMaxDepth)
	}

	switch v := value.(type) {
	case nil, bool, float64, int, int64:
		return nil
	case string:
		if len(v) > MetaMaxStringLen {
			return fmt.Errorf("string value too long (max %d)", MetaMaxStringLen)
		}
		return nil
	case []interface{}:
		if len(v) > MetaMaxListLen {
			return fmt.Errorf("list too long (max %d)", MetaMaxListLen)
		}
		for _, item := range v {
			if err := validateMetaValue(item, depth+1); err != nil {
				return err
			}
		}
		return nil
	case map[string]interface{}:
		if len(v) > MetaMaxKeys {
			return fmt.Errorf("mapping has too many keys (max %d)", MetaMaxKeys)
		}
		for key, item := range v {
			if len(key) > MetaMaxStringLen {
				return fmt.Errorf("mapping key too long (max %d)", MetaMaxStringLen)
			}
			if err := validateMetaValue(item, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported value type %T", value)
	}
}

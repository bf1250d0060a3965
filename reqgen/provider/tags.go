package provider

import (
	"fmt"
	"strings"

	"github.com/tmstorey/reqwire/reqgen/ir"
)

// restTag is the parsed form of a `rest:"..."` struct tag value.
type restTag struct {
	Role     ir.Role
	Rename   string
	Skip     bool
	Into     bool
	Default  bool
	Validate string
	Rules    string
}

// parseRestTag parses the value of a rest struct tag. The first element names
// the field's role with an optional wire rename ("query=page_size"), the rest
// are comma-separated options.
func parseRestTag(value string) (restTag, error) {
	var tag restTag
	parts := strings.Split(value, ",")

	head := strings.TrimSpace(parts[0])
	role, rename, hasRename := strings.Cut(head, "=")
	switch role {
	case "path":
		tag.Role = ir.RolePath
	case "query":
		tag.Role = ir.RoleQuery
	case "body":
		tag.Role = ir.RoleBody
	case "header":
		tag.Role = ir.RoleHeader
	case "-":
		if hasRename || len(parts) > 1 {
			return tag, fmt.Errorf("rest tag %q: %q takes no options", value, "-")
		}
		tag.Skip = true
		return tag, nil
	case "":
		return tag, fmt.Errorf("rest tag %q: missing role", value)
	default:
		return tag, fmt.Errorf("rest tag %q: unknown role %q", value, role)
	}
	if hasRename {
		if rename == "" {
			return tag, fmt.Errorf("rest tag %q: empty rename for role %q", value, role)
		}
		tag.Rename = rename
	}

	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)
		key, val, hasVal := strings.Cut(opt, "=")
		switch key {
		case "into":
			if hasVal {
				return tag, fmt.Errorf("rest tag %q: option %q takes no value", value, key)
			}
			tag.Into = true
		case "default":
			if hasVal {
				return tag, fmt.Errorf("rest tag %q: option %q takes no value", value, key)
			}
			tag.Default = true
		case "validate":
			if !hasVal || val == "" {
				return tag, fmt.Errorf("rest tag %q: option %q requires a function name", value, key)
			}
			tag.Validate = val
		case "rules":
			if !hasVal || val == "" {
				return tag, fmt.Errorf("rest tag %q: option %q requires a rule expression", value, key)
			}
			tag.Rules = val
		case "":
			return tag, fmt.Errorf("rest tag %q: empty option", value)
		default:
			return tag, fmt.Errorf("rest tag %q: unknown option %q", value, key)
		}
	}
	return tag, nil
}

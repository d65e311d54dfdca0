package assembler

import (
	"strings"

	"github.com/pkg/errors"
)

// valueToken is one comma-separated element of a byte or word
// directive's value list.
type valueToken struct {
	Value  string
	Quoted bool
}

// directiveName normalizes a directive token, dropping an optional
// leading dot.
func directiveName(s string) string {
	return strings.TrimPrefix(strings.ToLower(s), ".")
}

// directiveSize calculates the byte size of a directive for the sizing
// pass.
func (asm *Assembler) directiveSize(n *Node) (uint16, error) {
	dir := directiveName(n.Parts[0])
	switch dir {
	case "org":
		return 0, nil

	case "byte", "word":
		if len(n.Parts) < 2 {
			return 0, errors.Errorf("%s requires at least one value", n.Parts[0])
		}
		var size uint16
		for _, tok := range splitValues(n.Parts[1]) {
			switch {
			case tok.Quoted && dir == "word":
				return 0, errors.Errorf("%s does not take strings", n.Parts[0])
			case tok.Quoted:
				size += uint16(len(tok.Value))
			case dir == "word":
				size += 2
			default:
				size++
			}
		}
		return size, nil

	default:
		return 0, errors.Errorf("unknown directive: %s", n.Parts[0])
	}
}

// generateDirective generates the binary data for a directive node.
func (asm *Assembler) generateDirective(n *Node) ([]byte, error) {
	dir := directiveName(n.Parts[0])
	switch dir {
	case "org":
		// org only relocates label computation; it emits nothing.
		return nil, nil

	case "byte":
		if len(n.Parts) < 2 {
			return nil, errors.Errorf("%s requires at least one value", n.Parts[0])
		}
		var out []byte
		for _, tok := range splitValues(n.Parts[1]) {
			if tok.Quoted {
				out = append(out, tok.Value...)
				continue
			}
			v, err := asm.resolveValue(tok.Value)
			if err != nil {
				return nil, err
			}
			if v > 0xFF {
				return nil, errors.Errorf("byte value $%X out of range", v)
			}
			out = append(out, byte(v))
		}
		return out, nil

	case "word":
		if len(n.Parts) < 2 {
			return nil, errors.Errorf("%s requires at least one value", n.Parts[0])
		}
		var out []byte
		for _, tok := range splitValues(n.Parts[1]) {
			if tok.Quoted {
				return nil, errors.Errorf("%s does not take strings", n.Parts[0])
			}
			v, err := asm.resolveValue(tok.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, byte(v), byte(v>>8))
		}
		return out, nil

	default:
		return nil, errors.Errorf("unknown directive: %s", n.Parts[0])
	}
}

// resolveValue parses a constant, falling back to label lookup.
func (asm *Assembler) resolveValue(s string) (uint16, error) {
	if v, err := asm.parseConstant(s); err == nil {
		return v, nil
	}
	if v, ok := asm.labels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	return 0, errors.Errorf("invalid value %q", s)
}

// splitValues splits a directive value list by commas, keeping quoted
// strings intact.
func splitValues(s string) []valueToken {
	var result []valueToken
	var current strings.Builder
	inQuote := false

	flush := func(quoted bool) {
		v := current.String()
		if !quoted {
			v = strings.TrimSpace(v)
			if v == "" {
				return
			}
		}
		result = append(result, valueToken{Value: v, Quoted: quoted})
		current.Reset()
	}

	for _, r := range s {
		switch {
		case r == '\'':
			if inQuote {
				flush(true)
			}
			inQuote = !inQuote
		case r == ',' && !inQuote:
			flush(false)
		default:
			current.WriteRune(r)
		}
	}
	flush(false)
	return result
}

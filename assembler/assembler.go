package assembler

import (
	"strings"

	"github.com/Urethramancer/m6502/cpu"
	"github.com/pkg/errors"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	symbols map[string]uint16
	labels  map[string]uint16
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{
		symbols: make(map[string]uint16),
		labels:  make(map[string]uint16),
	}
}

// Assemble takes 6502 assembly source and returns the machine code,
// with label addresses computed relative to baseAddress.
func (asm *Assembler) Assemble(src string, baseAddress uint16) ([]byte, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	nodes, err := asm.parseLines(lines)
	if err != nil {
		return nil, errors.Wrap(err, "parsing error")
	}

	// Pass: resolve label addresses and node sizes until stable.
	for {
		pc := baseAddress
		changed := false
		for _, n := range nodes {
			if n.Type == NodeLabel {
				if addr, ok := asm.labels[n.Label]; !ok || addr != pc {
					asm.labels[n.Label] = pc
					changed = true
				}
				continue
			}
			if n.Type == NodeDirective && directiveName(n.Parts[0]) == "org" {
				if len(n.Parts) < 2 {
					return nil, errors.Errorf("%s requires an address", n.Parts[0])
				}
				addr, err := asm.parseConstant(n.Parts[1])
				if err != nil {
					return nil, err
				}
				pc = addr
				continue
			}

			size, err := asm.nodeSize(n)
			if err != nil {
				return nil, errors.Wrapf(err, "error calculating size for '%v'", n.Parts)
			}
			if n.Size != size {
				changed = true
			}
			n.Size = size
			pc += size
		}
		if !changed {
			break
		}
	}

	// Generate machine code.
	var machineCode []byte
	for _, n := range nodes {
		var code []byte
		var err error

		switch n.Type {
		case NodeLabel:
			// Labels do not emit code.
			continue
		case NodeDirective:
			code, err = asm.generateDirective(n)
		case NodeInstruction:
			code, err = asm.generateInstruction(n)
		}

		if err != nil {
			return nil, errors.Wrapf(err, "error generating code for '%v'", n.Parts)
		}
		machineCode = append(machineCode, code...)
	}

	return machineCode, nil
}

// parseLines converts raw source lines into a slice of Node objects.
func (asm *Assembler) parseLines(lines []string) ([]*Node, error) {
	var nodes []*Node
	for i, line := range lines {
		if commentIndex := strings.IndexRune(line, ';'); commentIndex != -1 {
			line = line[:commentIndex]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		if strings.Contains(line, ":") {
			parts := strings.SplitN(line, ":", 2)
			label := strings.TrimSpace(parts[0])
			if !strings.ContainsAny(label, " \t") {
				nodes = append(nodes, &Node{Type: NodeLabel, Label: strings.ToLower(label), Parts: []string{label + ":"}})
				line = strings.TrimSpace(parts[1])
			}
		}

		if line == "" {
			continue
		}

		var mnemonic, operandStr string
		firstSpace := strings.IndexAny(line, " \t")
		if firstSpace == -1 {
			mnemonic = line
		} else {
			mnemonic = line[:firstSpace]
			operandStr = strings.TrimSpace(line[firstSpace:])
		}

		nodeParts := []string{mnemonic}
		if operandStr != "" {
			nodeParts = append(nodeParts, operandStr)
		}

		// name equ value defines a constant and emits nothing.
		if fields := strings.Fields(line); len(fields) == 3 && strings.EqualFold(fields[1], "equ") {
			v, err := asm.parseConstant(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			asm.symbols[strings.ToLower(fields[0])] = v
			continue
		}

		switch directiveName(mnemonic) {
		case "org", "byte", "word":
			nodes = append(nodes, &Node{Type: NodeDirective, Parts: nodeParts})
			continue
		}

		mn := strings.ToLower(mnemonic)
		if !knownMnemonic(mn) {
			return nil, errors.Errorf("line %d: unknown instruction: %s", i+1, mn)
		}
		nodes = append(nodes, &Node{Type: NodeInstruction, Mnemonic: mn, Operand: operandStr, Parts: nodeParts})
	}
	return nodes, nil
}

// nodeSize returns the emitted byte size of a directive or instruction
// node for the sizing pass.
func (asm *Assembler) nodeSize(n *Node) (uint16, error) {
	if n.Type == NodeDirective {
		return asm.directiveSize(n)
	}
	_, entry, err := asm.resolveOperand(n)
	if err != nil {
		return 0, err
	}
	return uint16(entry.Bytes), nil
}

// resolveOperand parses the node's operand text and picks the matching
// opcode table entry, widening zero-page forms to absolute when the
// instruction has no zero-page encoding.
func (asm *Assembler) resolveOperand(n *Node) (Operand, *cpu.Opcode, error) {
	op, err := asm.parseOperand(n.Operand)
	if err != nil {
		return Operand{}, nil, err
	}
	entry, ok := cpu.Find(n.Mnemonic, op.Mode)
	if !ok {
		if wide := widen(op.Mode); wide != op.Mode {
			if entry, ok = cpu.Find(n.Mnemonic, wide); ok {
				op.Mode = wide
			}
		}
	}
	if !ok {
		return Operand{}, nil, errors.Errorf("%s does not support %s addressing", n.Mnemonic, op.Mode)
	}
	return op, entry, nil
}

// generateInstruction emits the opcode byte and operand bytes for an
// instruction node. Label addresses are final by the time this runs.
func (asm *Assembler) generateInstruction(n *Node) ([]byte, error) {
	op, entry, err := asm.resolveOperand(n)
	if err != nil {
		return nil, err
	}
	if op.Label != "" {
		v, ok := asm.labels[op.Label]
		if !ok {
			return nil, errors.Errorf("undefined label %q", op.Label)
		}
		op.Value = v
	}

	switch entry.Bytes {
	case 1:
		return []byte{entry.Code}, nil
	case 2:
		return []byte{entry.Code, byte(op.Value)}, nil
	default:
		return []byte{entry.Code, byte(op.Value), byte(op.Value >> 8)}, nil
	}
}

// widen maps a zero-page mode to its absolute counterpart.
func widen(mode cpu.AddressingMode) cpu.AddressingMode {
	switch mode {
	case cpu.ZeroPage:
		return cpu.Absolute
	case cpu.ZeroPageX:
		return cpu.AbsoluteX
	case cpu.ZeroPageY:
		return cpu.AbsoluteY
	}
	return mode
}

// knownMnemonic reports whether the opcode table has any entry for the
// mnemonic.
func knownMnemonic(name string) bool {
	for i := range cpu.Opcodes {
		if cpu.Opcodes[i].Name == name {
			return true
		}
	}
	return false
}

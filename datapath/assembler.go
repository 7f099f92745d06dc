package datapath

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	MACRO_DEPTH_LIMIT = 16 // Maximum macro expansion nesting.
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// charLiteral matches a quoted character, optionally escaped.
var charLiteral = regexp.MustCompile(`'\\?[^']'`)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass macro assembler for the datapath.
// Every source line that is not a directive assembles to one clock cycle.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	depth int // Current macro expansion depth.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// loadMap maps destination names to load selects.
var loadMap = map[string]CodeLoad{
	"out": LOAD_OUT,
	"a":   LOAD_A,
	"b":   LOAD_B,
	"c":   LOAD_C,
	"d":   LOAD_D,
	"e":   LOAD_E,
	"f":   LOAD_F,
	"-":   LOAD_NONE,
}

// driveMap maps source names to drive selects.
var driveMap = map[string]CodeDrive{
	"in": DRIVE_IN,
	"a":  DRIVE_A,
	"b":  DRIVE_B,
	"c":  DRIVE_C,
	"d":  DRIVE_D,
	"e":  DRIVE_E,
	"f":  DRIVE_F,
	"-":  DRIVE_NONE,
}

// aluMap maps ALU mnemonics to their encoders.
var aluMap = map[string]func(src CodeDrive) Instruction{
	"add":  MakeAdd,
	"sub":  MakeSub,
	"pass": MakePass,
	"hold": MakeHold,
}

// valueOf returns the byte value of a simple word.
// Negative values down to -128 wrap to their two's complement.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	invert := false
	if len(word) > 0 && word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}
	if word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < -0x80 || v64 > 0xff {
		err = ErrParseRange(word)
		return
	}
	value = uint8(v64)

	if invert {
		value = ^value
	}

	return
}

// inputOf decodes the optional input byte of an instruction.
func (asm *Assembler) inputOf(words ...string) (input uint8, tape bool, err error) {
	if len(words) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	if len(words) == 0 {
		return
	}

	if words[0] == "tape" {
		tape = true
		return
	}

	input, err = asm.valueOf(words[0])
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint8, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v8 uint8
		v8, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(v8))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	if st_int64 < -0x80 || st_int64 > 0xff {
		err = ErrParseRange(expr)
		return
	}
	value = uint8(st_int64)
	return
}

// parseLine parses a single line into words, expanding macros.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = charLiteral.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "e":
				str = "\033"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		if asm.depth >= MACRO_DEPTH_LIMIT {
			err = ErrMacroRecursion
			return
		}
		asm.depth++
		defer func() { asm.depth-- }()

		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// stripComment removes a ';' comment from a line of text.
// A ';' inside a character literal does not start a comment.
func stripComment(text string) string {
	for n := 0; n < len(text); n++ {
		switch text[n] {
		case '\'':
			if loc := charLiteral.FindStringIndex(text[n:]); loc != nil && loc[0] == 0 {
				n += loc[1] - 1
			}
		case ';':
			return text[:n]
		}
	}

	return text
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, _datapath_defines)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}
	asm.depth = 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	var ins Instruction
	var input uint8
	var tape bool

	// Alternate syntax substitutions
	switch {
	case words[0] == "out":
		// out SRC [INPUT] => mov out SRC [INPUT]
		words = append([]string{"mov", "out"}, words[1:]...)
	case words[0] == "in" && len(words) >= 2:
		// in DST [INPUT] => mov DST in [INPUT]
		words = append([]string{"mov", words[1], "in"}, words[2:]...)
	default:
		// unchanged
	}

	switch words[0] {
	case "mov":
		if len(words) < 3 {
			err = ErrOpcodeMissing
			return
		}
		dst, ok := loadMap[words[1]]
		if !ok {
			err = ErrTargetInvalid
			return
		}
		src, ok := driveMap[words[2]]
		if !ok {
			err = ErrSourceInvalid
			return
		}
		input, tape, err = asm.inputOf(words[3:]...)
		if err != nil {
			return
		}
		ins = MakeMove(dst, src)
	case "add", "sub", "pass", "hold":
		if len(words) < 2 {
			err = ErrOpcodeMissing
			return
		}
		src, ok := driveMap[words[1]]
		if !ok {
			err = ErrSourceInvalid
			return
		}
		input, tape, err = asm.inputOf(words[2:]...)
		if err != nil {
			return
		}
		ins = aluMap[words[0]](src)
	case "nop":
		input, tape, err = asm.inputOf(words[1:]...)
		if err != nil {
			return
		}
		ins = MakeNop()
	case ".byte":
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		var word uint8
		word, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		input, tape, err = asm.inputOf(words[2:]...)
		if err != nil {
			return
		}
		ins = Instruction(word)
	default:
		err = ErrInstructionInvalid
		return
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo:      lineno,
		Words:       initial_words,
		Instruction: ins,
		Input:       input,
		Tape:        tape,
	})

	return
}
